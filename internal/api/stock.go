package api

// StockResponse is the JSON shape of one snapshot row.
type StockResponse struct {
	Ticker          string  `json:"ticker"`
	Sector          string  `json:"sector"`
	Price           float64 `json:"price"`
	ChangePct       float64 `json:"change_pct"`
	WeekChange      float64 `json:"week_change"`
	MonthChange     float64 `json:"month_change"`
	Volume          int64   `json:"volume"`
	MarketCap       float64 `json:"market_cap"`
	OperatingMargin float64 `json:"operating_margin"`
	RevenueGrowth   float64 `json:"revenue_growth"`
	RuleOf40        float64 `json:"rule_of_40"`
	PERatio         float64 `json:"pe_ratio"`
	Beta            float64 `json:"beta"`
	Volatility      float64 `json:"volatility"`
	DebtToEquity    float64 `json:"debt_to_equity"`
	FetchedAt       string  `json:"fetched_at"`
}
