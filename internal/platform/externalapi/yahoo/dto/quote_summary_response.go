// Package dto defines data transfer objects for the Yahoo Finance API
// responses.
package dto

// RawValue is Yahoo's number wrapper. Only the raw value matters here,
// the formatted strings are for display.
type RawValue struct {
	Raw float64 `json:"raw"`
}

// QuoteSummaryResponse represents the JSON response from the
// /v10/finance/quoteSummary endpoint.
type QuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []QuoteSummaryResult `json:"result"`
		Error  *APIError            `json:"error"`
	} `json:"quoteSummary"`
}

// APIError is the error object Yahoo embeds in its envelopes.
type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// QuoteSummaryResult holds the modules requested from quoteSummary.
type QuoteSummaryResult struct {
	Price struct {
		RegularMarketPrice         RawValue `json:"regularMarketPrice"`
		RegularMarketChangePercent RawValue `json:"regularMarketChangePercent"`
		RegularMarketVolume        RawValue `json:"regularMarketVolume"`
		MarketCap                  RawValue `json:"marketCap"`
	} `json:"price"`

	SummaryProfile struct {
		Sector string `json:"sector"`
	} `json:"summaryProfile"`

	SummaryDetail struct {
		TrailingPE       RawValue `json:"trailingPE"`
		Beta             RawValue `json:"beta"`
		FiftyTwoWeekHigh RawValue `json:"fiftyTwoWeekHigh"`
		FiftyTwoWeekLow  RawValue `json:"fiftyTwoWeekLow"`
	} `json:"summaryDetail"`

	FinancialData struct {
		OperatingMargins RawValue `json:"operatingMargins"`
		RevenueGrowth    RawValue `json:"revenueGrowth"`
		DebtToEquity     RawValue `json:"debtToEquity"`
	} `json:"financialData"`
}
