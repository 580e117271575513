// Package entity defines the domain models for the snapshot feature.
package entity

import "time"

// Stock holds the fundamentals of a single ticker at snapshot time.
// Percentages are stored as plain numbers (8.5 means 8.5%).
type Stock struct {
	Ticker string // Ticker symbol (e.g., "AAPL")
	Sector string // Sector name, "Unknown" when the upstream omits it

	Price       float64 // Last traded price
	ChangePct   float64 // Daily change vs previous close, percent
	WeekChange  float64 // Price change over roughly one trading week, percent
	MonthChange float64 // Price change over one month, percent

	Volume    int64   // Daily trading volume
	MarketCap float64 // Market capitalization in USD

	OperatingMargin float64 // Operating margin, percent
	RevenueGrowth   float64 // Year-over-year revenue growth, percent
	RuleOf40        float64 // OperatingMargin + RevenueGrowth

	PERatio      float64 // Trailing (or forward) price/earnings ratio
	Beta         float64 // Beta vs the market, defaults to 1.0
	Volatility   float64 // 52-week range relative to its midpoint, percent
	DebtToEquity float64 // Debt-to-equity ratio, percent

	High52 float64 // 52-week high price
	Low52  float64 // 52-week low price

	FetchedAt time.Time // When this snapshot row was fetched upstream
}
