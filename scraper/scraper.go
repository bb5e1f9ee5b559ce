// Package scraper runs symbols through lookup, download, extraction and
// metric computation, one symbol at a time.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"szakszon.com/dividendscrape"
	"szakszon.com/dividendscrape/logger"
	"szakszon.com/dividendscrape/metrics"
)

type options struct {
	resolver  dividendscrape.SymbolResolver
	fetcher   dividendscrape.PageFetcher
	extractor dividendscrape.PageExtractor
}

type Option func(o options) options

func Resolver(v dividendscrape.SymbolResolver) Option {
	return func(o options) options {
		o.resolver = v
		return o
	}
}

func Fetcher(v dividendscrape.PageFetcher) Option {
	return func(o options) options {
		o.fetcher = v
		return o
	}
}

func Extractor(v dividendscrape.PageExtractor) Option {
	return func(o options) options {
		o.extractor = v
		return o
	}
}

var defaultOptions = options{}

func NewScraper(os ...Option) *Scraper {
	opts := defaultOptions
	for _, o := range os {
		opts = o(opts)
	}

	return &Scraper{
		opts: opts,
	}
}

type Scraper struct {
	opts options
	errs []error
}

// Run scrapes the symbols in order and hands every emittable record to
// emit. A failing symbol is logged and collected in Errs, the batch goes
// on. Only an emit error or a cancelled context stops it.
func (s *Scraper) Run(
	ctx context.Context,
	symbols []string,
	emit func(*dividendscrape.StockRecord) error,
) error {
	for _, symbol := range symbols {
		if err := ctx.Err(); err != nil {
			return err
		}

		symbol = strings.TrimSpace(symbol)
		if symbol == "" {
			continue
		}

		rec, err := s.Scrape(ctx, symbol)
		if err != nil {
			if !errors.Is(err, dividendscrape.ErrSkip) {
				s.errs = append(s.errs, &ScrapeError{Symbol: symbol, Err: err})
			}
			continue
		}

		if err := emit(rec); err != nil {
			return fmt.Errorf("emit %s: %w", symbol, err)
		}
	}
	return nil
}

// Scrape returns the record of one symbol. A page that is not of interest
// returns an error matching dividendscrape.ErrSkip.
func (s *Scraper) Scrape(
	ctx context.Context,
	symbol string,
) (*dividendscrape.StockRecord, error) {
	fctx := logger.WithFields(ctx, zap.String("symbol", symbol))

	rout, err := s.opts.resolver.Resolve(
		fctx,
		&dividendscrape.ResolveInput{Symbol: symbol},
	)
	if err != nil {
		s.notFound(ctx, fctx, symbol, err)
		return nil, fmt.Errorf("resolve: %w", err)
	}

	fout, err := s.opts.fetcher.Fetch(
		fctx,
		&dividendscrape.FetchInput{URL: rout.URL},
	)
	if err != nil {
		s.notFound(ctx, fctx, symbol, err)
		return nil, fmt.Errorf("fetch: %w", err)
	}

	page, err := s.opts.extractor.Extract(fout.Document, symbol)
	if err != nil {
		if !errors.Is(err, dividendscrape.ErrSkip) {
			logger.Warn(fctx, "could not extract page", zap.Error(err))
		}
		return nil, fmt.Errorf("extract: %w", err)
	}

	rec := s.record(fctx, page)
	if !rec.Emittable() {
		return nil, fmt.Errorf("no dividend: %w", dividendscrape.ErrSkip)
	}
	return rec, nil
}

func (s *Scraper) record(
	ctx context.Context,
	p *dividendscrape.PageData,
) *dividendscrape.StockRecord {
	yield, err := metrics.Yield(p.Dividend, p.Price)
	if err != nil {
		logger.Debug(ctx, "yield unavailable", zap.Error(err))
	}

	growth := metrics.GrowthRates(p.Payouts)

	return &dividendscrape.StockRecord{
		Ticker:          p.Ticker,
		Company:         p.Company,
		Sector:          p.Sector,
		Industry:        p.Industry,
		Price:           p.Price,
		EPS:             p.EPS,
		Dividend:        p.Dividend,
		Yield:           yield,
		PayoutRatio:     p.PayoutRatio,
		DividendYears:   p.DividendYears,
		ThreeYearGrowth: growth.Get(3),
		FiveYearGrowth:  growth.Get(5),
		TenYearGrowth:   growth.Get(10),
	}
}

// notFound logs the line shown in verbose mode for a symbol whose page
// could not be found or downloaded, and the cause at debug level.
func (s *Scraper) notFound(
	ctx context.Context,
	fctx context.Context,
	symbol string,
	err error,
) {
	logger.Debug(fctx, "lookup failed", zap.Error(err))
	logger.Info(ctx, "Could not find Dividend information for: "+symbol)
}

func (s *Scraper) Errs() []error {
	return s.errs
}

type ScrapeError struct {
	Symbol string
	Err    error
}

func (e *ScrapeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Symbol, e.Err)
}

func (e *ScrapeError) Unwrap() error {
	return e.Err
}
