package dividendscrape

import (
	"bytes"
	"io"
	"strings"
)

const zeroDividend = "$0.00"

type StockRecord struct {
	Ticker        string
	Company       string
	Sector        string
	Industry      string
	Price         string
	EPS           string
	Dividend      string
	Yield         string
	PayoutRatio   string
	DividendYears string

	// Growth rates are nil when the payout history is too short.
	ThreeYearGrowth *string
	FiveYearGrowth  *string
	TenYearGrowth   *string
}

// Emittable reports whether the record carries a ticker and a non-zero
// dividend.
func (r *StockRecord) Emittable() bool {
	return r != nil &&
		r.Ticker != "" &&
		r.Dividend != "" &&
		r.Dividend != zeroDividend
}

func (r *StockRecord) Fields() []string {
	return []string{
		r.Ticker,
		r.Company,
		r.Sector,
		r.Industry,
		r.Price,
		r.EPS,
		r.Dividend,
		r.Yield,
		r.PayoutRatio,
		r.DividendYears,
		optional(r.ThreeYearGrowth),
		optional(r.FiveYearGrowth),
		optional(r.TenYearGrowth),
	}
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// WriteRecord writes the record as one line of tab terminated fields.
func WriteRecord(w io.Writer, r *StockRecord) error {
	b := &bytes.Buffer{}
	for _, v := range r.Fields() {
		b.WriteString(strings.TrimRight(v, "\r\n"))
		b.WriteByte('\t')
	}
	b.WriteByte('\n')

	_, err := w.Write(b.Bytes())
	return err
}

// IsZeroDividend reports whether the dividend text is the literal zero
// amount.
func IsZeroDividend(dividend string) bool {
	return dividend == zeroDividend
}
