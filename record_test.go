package dividendscrape_test

import (
	"bytes"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"szakszon.com/dividendscrape"
)

func ptr(s string) *string { return &s }

func TestWriteRecord(t *testing.T) {
	rec := &dividendscrape.StockRecord{
		Ticker:          "PG",
		Company:         "Procter & Gamble Co.",
		Sector:          "Consumer Goods",
		Industry:        "Personal Products",
		Price:           "$145.00",
		EPS:             "$4.56",
		Dividend:        "$2.97\n",
		Yield:           "2.05%",
		PayoutRatio:     "65.12%",
		DividendYears:   "59",
		ThreeYearGrowth: ptr("0.16"),
		FiveYearGrowth:  ptr("0.20"),
		TenYearGrowth:   nil,
	}

	out := &bytes.Buffer{}
	require.NoError(t, dividendscrape.WriteRecord(out, rec))
	require.Equal(t,
		"PG\tProcter & Gamble Co.\tConsumer Goods\tPersonal Products\t"+
			"$145.00\t$4.56\t$2.97\t2.05%\t65.12%\t59\t0.16\t0.20\t\t\n",
		out.String(),
	)
}

func TestFieldsOrder(t *testing.T) {
	rec := &dividendscrape.StockRecord{
		Ticker:          "1",
		Company:         "2",
		Sector:          "3",
		Industry:        "4",
		Price:           "5",
		EPS:             "6",
		Dividend:        "7",
		Yield:           "8",
		PayoutRatio:     "9",
		DividendYears:   "10",
		ThreeYearGrowth: ptr("11"),
		FiveYearGrowth:  ptr("12"),
		TenYearGrowth:   ptr("13"),
	}
	require.Equal(t,
		[]string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "13"},
		rec.Fields(),
	)
}

func TestEmittable(t *testing.T) {
	tests := []struct {
		name string
		rec  *dividendscrape.StockRecord
		want bool
	}{
		{name: "nil", rec: nil, want: false},
		{name: "no ticker", rec: &dividendscrape.StockRecord{Dividend: "$1.00"}, want: false},
		{name: "no dividend", rec: &dividendscrape.StockRecord{Ticker: "PG"}, want: false},
		{name: "zero dividend", rec: &dividendscrape.StockRecord{Ticker: "PG", Dividend: "$0.00"}, want: false},
		{name: "dividend", rec: &dividendscrape.StockRecord{Ticker: "PG", Dividend: "$2.97"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.rec.Emittable())
		})
	}
}

func TestCheckAddress(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "http", raw: "http://www.dividend.com/stocks/pg/"},
		{name: "https", raw: "https://www.dividend.com/stocks/pg/"},
		{name: "relative", raw: "/stocks/pg/", wantErr: true},
		{name: "mailto", raw: "mailto:someone@example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.raw)
			require.NoError(t, err)

			err = dividendscrape.CheckAddress(u)
			if tt.wantErr {
				require.ErrorIs(t, err, dividendscrape.ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
		})
	}

	require.ErrorIs(t, dividendscrape.CheckAddress(nil), dividendscrape.ErrInvalidAddress)
}
