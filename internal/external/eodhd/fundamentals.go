package eodhd

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/rfalmeida/b3rank/internal/contracts"
)

// FetchFundamentals fetches quarterly fundamentals for a ticker and
// returns the usable records in descending report-date order.
//
// Only quarter-end dates present in both the income statement and the
// balance sheet are considered. A quarter missing EBIT, missing both
// debt and equity, or carrying an unparseable enterprise value is dropped
// with a diagnostic naming the missing fields.
func (c *Client) FetchFundamentals(ctx context.Context, ticker string) (*contracts.FundamentalsBatch, error) {
	endpoint := fmt.Sprintf("%s/api/fundamentals/%s?api_token=%s&fmt=json",
		c.baseURL, url.PathEscape(ticker), url.QueryEscape(c.apiToken))

	var payload fundamentalsResponse
	if err := c.httpClient.GetJSON(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("fundamentals request failed: %w", err)
	}

	income := payload.Financials.IncomeStatement.Quarterly
	balance := payload.Financials.BalanceSheet.Quarterly
	if len(income) == 0 || len(balance) == 0 {
		return &contracts.FundamentalsBatch{
			Dropped: []string{fmt.Sprintf("no quarterly data for %s", ticker)},
		}, nil
	}

	// An absent valuation block means enterprise value 0, which the value
	// calculators resolve to a zero yield. Only an explicit null or
	// garbage value drops the records.
	evValid := true
	evValue := 0.0
	if ev := payload.Valuation.EnterpriseValue; ev != nil {
		evValid = ev.Valid
		evValue = ev.Value
	}

	// Usable dates are the intersection of the two quarterly maps,
	// processed newest first.
	dates := make([]string, 0, len(income))
	for date := range income {
		if _, ok := balance[date]; ok {
			dates = append(dates, date)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	batch := &contracts.FundamentalsBatch{}
	for _, date := range dates {
		inc := income[date]
		bal := balance[date]

		var missing []string
		if !inc.EBIT.Valid {
			missing = append(missing, "ebit")
		}
		if !bal.ShortLongTermDebtTotal.Valid && !bal.TotalStockholderEquity.Valid {
			missing = append(missing, "debt+equity")
		}
		if !evValid {
			missing = append(missing, "enterprise_value")
		}

		if len(missing) > 0 {
			batch.Dropped = append(batch.Dropped,
				fmt.Sprintf("%s %s: missing fields - %s", ticker, date, strings.Join(missing, ", ")))
			continue
		}

		reportDate, err := time.Parse("2006-01-02", date)
		if err != nil {
			batch.Dropped = append(batch.Dropped,
				fmt.Sprintf("%s %s: unparseable report date", ticker, date))
			continue
		}

		batch.Records = append(batch.Records, contracts.FundamentalsRecord{
			Ticker:          ticker,
			ReportDate:      reportDate,
			EBIT:            inc.EBIT.Value,
			EnterpriseValue: evValue,
			TotalDebt:       bal.ShortLongTermDebtTotal.Value,
			TotalEquity:     bal.TotalStockholderEquity.Value,
		})
	}

	c.logger.WithFields(map[string]interface{}{
		"ticker":  ticker,
		"records": len(batch.Records),
		"dropped": len(batch.Dropped),
	}).Debug("Fetched fundamentals")

	return batch, nil
}
