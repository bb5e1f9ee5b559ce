// Package chrome renders detail pages in a headless Chrome for sites that
// build their markup with scripts.
package chrome

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/antchfx/htmlquery"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"szakszon.com/dividendscrape"
	"szakszon.com/dividendscrape/logger"
)

type options struct {
	timeout   time.Duration
	userAgent string
	headless  bool
	execPath  string
}

type Option func(o options) options

// Timeout bounds a whole page load, 0 means no timeout.
func Timeout(d time.Duration) Option {
	return func(o options) options {
		o.timeout = d
		return o
	}
}

func UserAgent(v string) Option {
	return func(o options) options {
		o.userAgent = v
		return o
	}
}

func Headless(v bool) Option {
	return func(o options) options {
		o.headless = v
		return o
	}
}

// ExecPath sets the browser binary, found on PATH when empty.
func ExecPath(v string) Option {
	return func(o options) options {
		o.execPath = v
		return o
	}
}

var defaultOptions = options{
	timeout:  30 * time.Second,
	headless: true,
}

func NewFetcher(os ...Option) dividendscrape.PageFetcher {
	opts := defaultOptions
	for _, o := range os {
		opts = o(opts)
	}

	return &fetcher{
		opts: opts,
	}
}

type fetcher struct {
	opts options
}

func (f *fetcher) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", f.opts.headless),
	)
	if f.opts.execPath != "" {
		opts = append(opts, chromedp.ExecPath(f.opts.execPath))
	}
	return opts
}

// Fetch starts a browser, loads the page and returns the rendered
// document.
func (f *fetcher) Fetch(
	ctx context.Context,
	in *dividendscrape.FetchInput,
) (*dividendscrape.FetchOutput, error) {
	if err := dividendscrape.CheckAddress(in.URL); err != nil {
		return nil, err
	}

	if f.opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.opts.timeout)
		defer cancel()
	}

	actx, cancel := chromedp.NewExecAllocator(ctx, f.allocatorOptions()...)
	defer cancel()

	log := logger.Get(ctx).Sugar()
	bctx, cancel := chromedp.NewContext(
		actx,
		chromedp.WithLogf(log.Debugf),
		chromedp.WithErrorf(log.Debugf),
	)
	defer cancel()

	if f.opts.userAgent != "" {
		err := chromedp.Run(bctx,
			emulation.SetUserAgentOverride(f.opts.userAgent),
		)
		if err != nil {
			return nil, fmt.Errorf("user agent: %w", err)
		}
	}

	resp, err := chromedp.RunResponse(bctx, chromedp.Navigate(in.URL.String()))
	if err != nil {
		return nil, fmt.Errorf("navigate %s: %w", in.URL, err)
	}
	status := 0
	if resp != nil {
		status = int(resp.Status)
	}

	var markup string
	err = chromedp.Run(bctx,
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &markup, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", in.URL, err)
	}

	logger.Debug(ctx, "page",
		zap.Stringer("url", in.URL),
		zap.Int("status", status),
		zap.Int("size", len(markup)),
	)

	doc, err := htmlquery.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", in.URL, err)
	}

	return &dividendscrape.FetchOutput{
		StatusCode: status,
		Document:   doc,
	}, nil
}
