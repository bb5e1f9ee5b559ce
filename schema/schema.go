// Package schema describes where the fields of a detail page live in its
// markup. A site layout change is fixed here, without touching the
// extraction code.
package schema

// Schema is a set of locators for one page layout. Selector fields are
// CSS selectors, PayoutRows and PayoutCell are XPath expressions.
type Schema struct {
	Ticker  string
	Company string

	// Sector is the SectorIndex-th match of Sector, or DefaultSector
	// when there are fewer matches.
	Sector        string
	SectorIndex   int
	DefaultSector string

	Industry string
	Price    string

	// EPS is the EPSToken-th whitespace separated token of the text.
	EPS      string
	EPSToken int

	Dividend    string
	PayoutRatio string

	// DividendYears is the DividendYearsToken-th token of the text.
	DividendYears      string
	DividendYearsToken int

	// PayoutRows selects the payout table rows, PayoutCell the cell
	// holding the amount relative to a row.
	PayoutRows string
	PayoutCell string
}

// DividendCom is the layout of dividend.com stock pages.
var DividendCom = Schema{
	Ticker:             ".data-title__symbol",
	Company:            ".data-title__name",
	Sector:             ".breadcrumb a",
	SectorIndex:        2,
	DefaultSector:      "Uncategorized",
	Industry:           ".category",
	Price:              ".price",
	EPS:                ".payout_ratio .supplemental",
	EPSToken:           1,
	Dividend:           ".dividend-per-share .value",
	PayoutRatio:        ".payout_ratio .value",
	DividendYears:      ".increasing-dividend-period .value",
	DividendYearsToken: 0,
	PayoutRows:         `//table[@class="base-table not-clickable payout-data"]//tr`,
	PayoutCell:         "td[1]",
}
