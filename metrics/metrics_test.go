package metrics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"szakszon.com/dividendscrape/metrics"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "$2.98", want: "2.98"},
		{in: " $145.00 ", want: "145"},
		{in: "0.7433", want: "0.7433"},
		{in: "$.50", want: "0.5"},
		{in: "$1.25 (est.)", want: "1.25"},
		{in: "", wantErr: true},
		{in: "N/A", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := metrics.Amount(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, decimal.RequireFromString(tt.want).Equal(v), "got %s", v)
		})
	}
}

func TestYield(t *testing.T) {
	tests := []struct {
		name     string
		dividend string
		price    string
		want     string
	}{
		{name: "rounds down", dividend: "$2.97", price: "$145.00", want: "2.05%"},
		{name: "rounds half up", dividend: "$2.98", price: "$145.00", want: "2.06%"},
		{name: "whole", dividend: "$2.00", price: "$100.00", want: "2.00%"},
		{name: "no currency", dividend: "1", price: "3", want: "33.33%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := metrics.Yield(tt.dividend, tt.price)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)

			again, err := metrics.Yield(tt.dividend, tt.price)
			require.NoError(t, err)
			require.Equal(t, got, again)
		})
	}
}

func TestYieldUnavailable(t *testing.T) {
	tests := []struct {
		name     string
		dividend string
		price    string
	}{
		{name: "zero price", dividend: "$2.98", price: "$0.00"},
		{name: "missing price", dividend: "$2.98", price: ""},
		{name: "missing dividend", dividend: "", price: "$145.00"},
		{name: "text price", dividend: "$2.98", price: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := metrics.Yield(tt.dividend, tt.price)
			require.ErrorIs(t, err, metrics.ErrUnavailable)
		})
	}
}

func TestCleanPayouts(t *testing.T) {
	got := metrics.CleanPayouts([]string{
		"$0.7433", "$0.7433", "$0.6891", "$0.00", "$0.6433",
	})
	require.Equal(t, []string{"0.74", "0.69", "0.64"}, fixed(got))
}

func TestCleanPayoutsBoundaries(t *testing.T) {
	got := metrics.CleanPayouts([]string{"$0.00", "$1.99", "$2.00", "$1.98"})
	require.Equal(t, []string{"1.99", "1.98"}, fixed(got))
}

func TestCleanPayoutsDedupNotConsecutive(t *testing.T) {
	got := metrics.CleanPayouts([]string{"$0.50", "$0.45", "$0.50", "", "Amount", "$0.40"})
	require.Equal(t, []string{"0.50", "0.45", "0.40"}, fixed(got))
}

func TestGrowthRate(t *testing.T) {
	rows := []string{"$0.7433", "$0.7433", "$0.6891", "$0.00", "$0.6433"}

	tests := []struct {
		name    string
		rows    []string
		periods int
		want    string
		wantOK  bool
	}{
		{name: "three years", rows: rows, periods: 3, want: "0.16", wantOK: true},
		{name: "short history", rows: rows, periods: 10, want: "0.16", wantOK: true},
		{name: "one value", rows: []string{"$0.50"}, periods: 5, want: "0.00", wantOK: true},
		{name: "two years", rows: rows, periods: 2, want: "0.07", wantOK: true},
		{name: "empty", rows: nil, periods: 3, wantOK: false},
		{name: "noise only", rows: []string{"$0.00", "$2.50", "Date"}, periods: 3, wantOK: false},
		{name: "no window", rows: rows, periods: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := metrics.GrowthRate(tt.rows, tt.periods)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestGrowthRates(t *testing.T) {
	rows := []string{
		"$0.80", "$0.75", "$0.70", "$0.65", "$0.60",
		"$0.55", "$0.50", "$0.45", "$0.40", "$0.35", "$0.30",
	}

	g := metrics.GrowthRates(rows)
	require.Equal(t, "0.14", *g.Get(3))
	require.Equal(t, "0.33", *g.Get(5))
	require.Equal(t, "1.29", *g.Get(10))

	empty := metrics.GrowthRates(nil)
	require.Nil(t, empty.Get(3))
	require.Nil(t, empty.Get(5))
	require.Nil(t, empty.Get(10))
}

func fixed(values []decimal.Decimal) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.StringFixed(2))
	}
	return out
}
