package eodhd

import (
	"strconv"
	"strings"
)

// Amount is a numeric field that EODHD serves inconsistently: JSON
// number, quoted number, null or garbage. Anything unparseable is
// recorded as absent rather than failing the whole response.
type Amount struct {
	Value float64
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler. It never returns an error;
// absence is data, not a fault.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		a.Valid = false
		return nil
	}

	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		a.Valid = false
		return nil
	}

	a.Value = v
	a.Valid = true
	return nil
}

// fundamentalsResponse mirrors the slice of the EODHD fundamentals
// payload the pipeline consumes.
type fundamentalsResponse struct {
	Financials struct {
		IncomeStatement struct {
			Quarterly map[string]incomeEntry `json:"quarterly"`
		} `json:"Income_Statement"`
		BalanceSheet struct {
			Quarterly map[string]balanceEntry `json:"quarterly"`
		} `json:"Balance_Sheet"`
	} `json:"Financials"`
	Valuation struct {
		// Pointer distinguishes a missing key (defaults to 0) from an
		// explicit null (record dropped).
		EnterpriseValue *Amount `json:"EnterpriseValue"`
	} `json:"Valuation"`
}

type incomeEntry struct {
	EBIT Amount `json:"ebit"`
}

type balanceEntry struct {
	ShortLongTermDebtTotal Amount `json:"shortLongTermDebtTotal"`
	TotalStockholderEquity Amount `json:"totalStockholderEquity"`
}

// eodEntry is one daily bar from the EOD price endpoint
type eodEntry struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}
