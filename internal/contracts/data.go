package contracts

import "time"

// FundamentalsRecord is one usable quarterly filing for a ticker.
// A record only exists when EBIT and enterprise value were present and at
// least one of debt/equity was present; incomplete quarters are dropped by
// the provider with a diagnostic.
//
// Currency note: EBIT is kept in the currency of the source filing while
// enterprise value, debt and equity are in the local (BRL) reporting
// currency. The value calculators apply the spot rate in the same
// multiply/divide positions as the upstream data has always been handled;
// do not "fix" the placement without revisiting the provider.
type FundamentalsRecord struct {
	Ticker          string    `json:"ticker"`
	ReportDate      time.Time `json:"report_date"` // quarter end
	EBIT            float64   `json:"ebit"`
	EnterpriseValue float64   `json:"enterprise_value"`
	TotalDebt       float64   `json:"total_debt"`   // 0 when absent
	TotalEquity     float64   `json:"total_equity"` // 0 when absent
}

// FundamentalsBatch is the result of one fundamentals fetch: the usable
// records in descending report-date order plus one message per dropped
// quarter explaining which fields were missing.
type FundamentalsBatch struct {
	Records []FundamentalsRecord
	Dropped []string
}

// PricePoint is a single daily close
type PricePoint struct {
	Date  time.Time `json:"date"`
	Close float64   `json:"close"`
}

// PriceSeries is an ordered-by-date sequence of daily closes.
// A nil series means the ticker had no usable price data.
type PriceSeries []PricePoint

// Closes returns just the closing prices, oldest first
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, p := range s {
		closes[i] = p.Close
	}
	return closes
}
