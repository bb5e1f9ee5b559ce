// Package metrics derives the computed fields of a stock record.
package metrics

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnavailable is returned when a metric cannot be computed from the
// scraped values.
var ErrUnavailable = errors.New("metric unavailable")

// Payouts outside (0, MaxPayout] are table noise, not dividends.
var MaxPayout = decimal.RequireFromString("1.99")

// Periods are the growth windows reported for every stock.
var Periods = []int{3, 5, 10}

const places = 2

var hundred = decimal.NewFromInt(100)

var numberRE = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)`)

// Amount parses a money text like "$2.98". Only the leading number is
// read, so trailing annotations are ignored.
func Amount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSpace(s)

	m := numberRE.FindString(s)
	if m == "" {
		return decimal.Zero, fmt.Errorf("not a number: %q", s)
	}
	m = strings.TrimSuffix(strings.TrimPrefix(m, "+"), ".")
	if strings.HasPrefix(m, ".") {
		m = "0" + m
	}
	return decimal.NewFromString(m)
}

// Yield returns dividend/price as a percentage rounded to 2 places,
// e.g. "2.05%".
func Yield(dividend, price string) (string, error) {
	d, err := Amount(dividend)
	if err != nil {
		return "", fmt.Errorf("dividend: %v: %w", err, ErrUnavailable)
	}
	p, err := Amount(price)
	if err != nil {
		return "", fmt.Errorf("price: %v: %w", err, ErrUnavailable)
	}
	if p.IsZero() {
		return "", fmt.Errorf("price is zero: %w", ErrUnavailable)
	}

	y := d.Div(p).Mul(hundred).Round(places)
	return y.StringFixed(places) + "%", nil
}

// CleanPayouts rounds every payout to 2 places, drops noise and keeps the
// first occurrence of every value.
func CleanPayouts(payouts []string) []decimal.Decimal {
	seen := make(map[string]struct{})
	out := make([]decimal.Decimal, 0, len(payouts))
	for _, s := range payouts {
		v, err := Amount(s)
		if err != nil {
			continue
		}
		v = v.Round(places)
		if v.IsZero() || v.GreaterThan(MaxPayout) {
			continue
		}

		k := v.StringFixed(places)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

// GrowthRate returns first/last - 1 over the first periods distinct
// payouts, rounded to 2 places. A shorter history shrinks the window.
// It reports false when there is no payout at all.
func GrowthRate(payouts []string, periods int) (string, bool) {
	return growthRate(CleanPayouts(payouts), periods)
}

func growthRate(values []decimal.Decimal, periods int) (string, bool) {
	if periods < 1 || len(values) == 0 {
		return "", false
	}
	if len(values) > periods {
		values = values[:periods]
	}

	first := values[0]
	last := values[len(values)-1]
	if last.IsZero() {
		return "", false
	}

	g := first.Div(last).Sub(decimal.NewFromInt(1)).Round(places)
	return g.StringFixed(places), true
}

// Growth holds the growth rates by period, absent periods have no value.
type Growth map[int]string

// Get returns the rate of the period, or nil.
func (g Growth) Get(periods int) *string {
	v, ok := g[periods]
	if !ok {
		return nil
	}
	return &v
}

// GrowthRates computes every period in Periods from one cleaned payout
// sequence.
func GrowthRates(payouts []string) Growth {
	values := CleanPayouts(payouts)

	g := make(Growth, len(Periods))
	for _, n := range Periods {
		if v, ok := growthRate(values, n); ok {
			g[n] = v
		}
	}
	return g
}
