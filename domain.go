package dividendscrape

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"golang.org/x/net/html"
)

var (
	// ErrNotFound is returned when the search endpoint does not redirect
	// to a detail page for the symbol.
	ErrNotFound = errors.New("symbol not found")

	// ErrInvalidAddress is returned for a detail page address that cannot
	// be parsed or requested.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrSkip is returned by an extractor for a page that is not of
	// interest: unrecognized layout or a stock without dividend.
	ErrSkip = errors.New("skip")
)

type Command interface {
	Execute(ctx context.Context) error
}

type SymbolResolver interface {
	Resolve(
		ctx context.Context,
		in *ResolveInput,
	) (*ResolveOutput, error)
}

type ResolveInput struct {
	Symbol string
}

type ResolveOutput struct {
	URL *url.URL
}

type PageFetcher interface {
	Fetch(
		ctx context.Context,
		in *FetchInput,
	) (*FetchOutput, error)
}

type FetchInput struct {
	URL *url.URL
}

type FetchOutput struct {
	StatusCode int
	Document   *html.Node
}

type PageExtractor interface {
	Extract(doc *html.Node, symbol string) (*PageData, error)
}

// PageData holds the raw text fields of a detail page.
type PageData struct {
	Ticker        string
	Company       string
	Sector        string
	Industry      string
	Price         string
	EPS           string
	Dividend      string
	PayoutRatio   string
	DividendYears string

	// Payouts is the first column text of every payout table row,
	// in document order.
	Payouts []string
}

// CheckAddress reports ErrInvalidAddress for an address a page cannot be
// requested from.
func CheckAddress(u *url.URL) error {
	if u == nil {
		return fmt.Errorf("no url: %w", ErrInvalidAddress)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%q: unsupported scheme: %w", u.String(), ErrInvalidAddress)
	}
	if u.Host == "" {
		return fmt.Errorf("%q: no host: %w", u.String(), ErrInvalidAddress)
	}
	return nil
}
