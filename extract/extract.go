// Package extract reads the dividend fields out of a detail page.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"szakszon.com/dividendscrape"
	"szakszon.com/dividendscrape/schema"
)

type options struct {
	schema schema.Schema
}

type Option func(o options) options

func Schema(s schema.Schema) Option {
	return func(o options) options {
		o.schema = s
		return o
	}
}

var defaultOptions = options{
	schema: schema.DividendCom,
}

func NewExtractor(os ...Option) *Extractor {
	opts := defaultOptions
	for _, o := range os {
		opts = o(opts)
	}

	return &Extractor{
		opts: opts,
	}
}

type Extractor struct {
	opts options
}

// Extract returns the page fields, or dividendscrape.ErrSkip when the page
// has no ticker or the stock pays no dividend. Every other missing field
// is left empty.
func (e *Extractor) Extract(
	doc *html.Node,
	symbol string,
) (*dividendscrape.PageData, error) {
	if doc == nil {
		return nil, fmt.Errorf("%s: no document: %w", symbol, dividendscrape.ErrSkip)
	}

	s := e.opts.schema
	d := goquery.NewDocumentFromNode(doc)

	p := &dividendscrape.PageData{}
	p.Ticker = text(d.Find(s.Ticker))
	if p.Ticker == "" {
		return nil, fmt.Errorf("%s: no ticker: %w", symbol, dividendscrape.ErrSkip)
	}

	p.Company = text(d.Find(s.Company))
	p.Sector = s.DefaultSector
	if sector := d.Find(s.Sector); sector.Length() > s.SectorIndex {
		p.Sector = text(sector.Eq(s.SectorIndex))
	}
	p.Industry = text(d.Find(s.Industry))
	p.Price = text(d.Find(s.Price))
	p.EPS = token(text(d.Find(s.EPS)), s.EPSToken)

	p.Dividend = text(d.Find(s.Dividend))
	if dividendscrape.IsZeroDividend(p.Dividend) {
		return nil, fmt.Errorf("%s: no dividend: %w", symbol, dividendscrape.ErrSkip)
	}

	p.PayoutRatio = text(d.Find(s.PayoutRatio))
	p.DividendYears = token(text(d.Find(s.DividendYears)), s.DividendYearsToken)

	payouts, err := e.payouts(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: payouts: %w", symbol, err)
	}
	p.Payouts = payouts

	return p, nil
}

func (e *Extractor) payouts(doc *html.Node) ([]string, error) {
	rows, err := htmlquery.QueryAll(doc, e.opts.schema.PayoutRows)
	if err != nil {
		return nil, err
	}

	payouts := make([]string, 0, len(rows))
	for _, row := range rows {
		cell, err := htmlquery.Query(row, e.opts.schema.PayoutCell)
		if err != nil {
			return nil, err
		}
		v := ""
		if cell != nil {
			v = strings.TrimSpace(htmlquery.InnerText(cell))
		}
		payouts = append(payouts, v)
	}
	return payouts, nil
}

func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

func token(s string, i int) string {
	fields := strings.Fields(s)
	if i < 0 || len(fields) <= i {
		return ""
	}
	return fields[i]
}
