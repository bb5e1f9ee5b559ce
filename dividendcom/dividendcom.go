// Package dividendcom looks up and downloads stock pages of dividend.com.
package dividendcom

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/antchfx/htmlquery"
	"go.uber.org/zap"

	"szakszon.com/dividendscrape"
	"szakszon.com/dividendscrape/logger"
)

type DividendCom struct {
	opts         options
	searchClient *http.Client
	pageClient   *http.Client
}

func NewDividendCom(os ...Option) *DividendCom {
	opts := defaultOptions
	for _, o := range os {
		opts = o(opts)
	}

	pageClient := opts.httpClient
	if pageClient == nil {
		pageClient = &http.Client{
			Timeout: opts.timeout,
		}
	}

	// The search answers with a redirect to the detail page, which has
	// to be seen instead of followed.
	searchClient := *pageClient
	searchClient.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &DividendCom{
		opts:         opts,
		searchClient: &searchClient,
		pageClient:   pageClient,
	}
}

func (c *DividendCom) searchURL(symbol string) (*url.URL, error) {
	u, err := url.Parse(
		strings.TrimRight(c.opts.baseURL, "/") +
			"/search/" +
			"?q=" + url.QueryEscape(symbol),
	)
	if err != nil {
		return nil, fmt.Errorf("search url: %v: %w", err, dividendscrape.ErrInvalidAddress)
	}
	if err := dividendscrape.CheckAddress(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (c *DividendCom) NewResolver() dividendscrape.SymbolResolver {
	return &resolver{c: c}
}

type resolver struct {
	c *DividendCom
}

// Resolve returns the detail page address the search redirects to, or
// dividendscrape.ErrNotFound when it does not redirect.
func (s *resolver) Resolve(
	ctx context.Context,
	in *dividendscrape.ResolveInput,
) (*dividendscrape.ResolveOutput, error) {
	symbol := strings.TrimSpace(in.Symbol)

	u, err := s.c.searchURL(symbol)
	if err != nil {
		return nil, err
	}

	req, err := s.c.newRequest(ctx, u)
	if err != nil {
		return nil, err
	}

	resp, err := s.c.searchClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", symbol, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	logger.Debug(ctx, "search",
		zap.String("symbol", symbol),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode != http.StatusFound {
		return nil, fmt.Errorf("search %s: status %d: %w",
			symbol, resp.StatusCode, dividendscrape.ErrNotFound)
	}

	loc, err := resp.Location()
	if err != nil {
		return nil, fmt.Errorf("search %s: %v: %w",
			symbol, err, dividendscrape.ErrInvalidAddress)
	}
	if err := dividendscrape.CheckAddress(loc); err != nil {
		return nil, fmt.Errorf("search %s: %w", symbol, err)
	}

	return &dividendscrape.ResolveOutput{
		URL: loc,
	}, nil
}

func (c *DividendCom) NewFetcher() dividendscrape.PageFetcher {
	return &fetcher{c: c}
}

type fetcher struct {
	c *DividendCom
}

// Fetch downloads and parses the page whatever its status code is. A
// missing page shows up later as missing fields.
func (s *fetcher) Fetch(
	ctx context.Context,
	in *dividendscrape.FetchInput,
) (*dividendscrape.FetchOutput, error) {
	if err := dividendscrape.CheckAddress(in.URL); err != nil {
		return nil, err
	}

	req, err := s.c.newRequest(ctx, in.URL)
	if err != nil {
		return nil, err
	}

	resp, err := s.c.pageClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", in.URL, err)
	}
	defer resp.Body.Close()

	logger.Debug(ctx, "page",
		zap.Stringer("url", in.URL),
		zap.Int("status", resp.StatusCode),
	)

	body, err := decodeBody(resp)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", in.URL, err)
	}
	defer body.Close()

	doc, err := htmlquery.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", in.URL, err)
	}

	return &dividendscrape.FetchOutput{
		StatusCode: resp.StatusCode,
		Document:   doc,
	}, nil
}

func (c *DividendCom) newRequest(
	ctx context.Context,
	u *url.URL,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		u.String(),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, dividendscrape.ErrInvalidAddress)
	}

	req.Header.Set("User-Agent", c.opts.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Encoding", acceptEncoding)
	return req, nil
}

const defaultBaseURL = "http://www.dividend.com"

const defaultUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var defaultOptions = options{
	baseURL:   defaultBaseURL,
	userAgent: defaultUA,
	timeout:   0,
}

type options struct {
	baseURL    string
	userAgent  string
	timeout    time.Duration // http client timeout, 0 means no timeout
	httpClient *http.Client
}

type Option func(o options) options

func BaseURL(v string) Option {
	return func(o options) options {
		o.baseURL = v
		return o
	}
}

func UserAgent(v string) Option {
	return func(o options) options {
		o.userAgent = v
		return o
	}
}

func Timeout(d time.Duration) Option {
	return func(o options) options {
		o.timeout = d
		return o
	}
}

// HTTPClient replaces the default client, Timeout is ignored then.
func HTTPClient(c *http.Client) Option {
	return func(o options) options {
		o.httpClient = c
		return o
	}
}
