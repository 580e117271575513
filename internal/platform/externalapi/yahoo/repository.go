package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"stockradar/internal/feature/snapshot/domain/entity"
	"stockradar/internal/feature/snapshot/usecase"
	"stockradar/internal/platform/externalapi/yahoo/dto"
)

// quoteSummaryModules are the quoteSummary modules the snapshot needs.
const quoteSummaryModules = "price,summaryProfile,summaryDetail,financialData"

// weekBars is how many daily bars back the week momentum looks.
const weekBars = 5

// YahooMarket fetches stock fundamentals from the Yahoo Finance API.
type YahooMarket struct {
	cfg    Config
	client *http.Client
}

var _ usecase.MarketRepository = (*YahooMarket)(nil)

// NewYahooMarket creates a YahooMarket with the given config and HTTP
// client.
func NewYahooMarket(cfg Config, client *http.Client) *YahooMarket {
	return &YahooMarket{cfg: cfg, client: client}
}

// GetFundamentals fetches the fundamentals for one ticker from the
// quoteSummary endpoint, then the recent daily closes from the chart
// endpoint for the week and month momentum. Momentum is best effort:
// a failed chart request leaves both changes at zero rather than
// discarding the whole ticker.
func (y *YahooMarket) GetFundamentals(ctx context.Context, ticker string) (entity.Stock, error) {
	stock, err := y.fetchSummary(ctx, ticker)
	if err != nil {
		return entity.Stock{}, err
	}

	week, month, err := y.fetchMomentum(ctx, ticker)
	if err != nil {
		slog.Warn("momentum fetch failed", "ticker", ticker, "error", err)
	} else {
		stock.WeekChange = week
		stock.MonthChange = month
	}

	return stock, nil
}

func (y *YahooMarket) fetchSummary(ctx context.Context, ticker string) (entity.Stock, error) {
	q := url.Values{}
	q.Set("modules", quoteSummaryModules)
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?%s", y.cfg.BaseURL, url.PathEscape(ticker), q.Encode())

	var body dto.QuoteSummaryResponse
	if err := y.getJSON(ctx, u, &body); err != nil {
		return entity.Stock{}, err
	}
	if body.QuoteSummary.Error != nil {
		return entity.Stock{}, fmt.Errorf("yahoo quoteSummary: %s", body.QuoteSummary.Error.Description)
	}
	if len(body.QuoteSummary.Result) == 0 {
		return entity.Stock{}, fmt.Errorf("yahoo quoteSummary: no result for %s", ticker)
	}
	r := body.QuoteSummary.Result[0]

	// Yahoo reports margins, growth, and the day change as fractions.
	// Everything else is already in the unit the snapshot stores.
	return entity.Stock{
		Ticker:          ticker,
		Sector:          r.SummaryProfile.Sector,
		Price:           r.Price.RegularMarketPrice.Raw,
		ChangePct:       r.Price.RegularMarketChangePercent.Raw * 100,
		Volume:          int64(r.Price.RegularMarketVolume.Raw),
		MarketCap:       r.Price.MarketCap.Raw,
		OperatingMargin: r.FinancialData.OperatingMargins.Raw * 100,
		RevenueGrowth:   r.FinancialData.RevenueGrowth.Raw * 100,
		DebtToEquity:    r.FinancialData.DebtToEquity.Raw,
		PERatio:         r.SummaryDetail.TrailingPE.Raw,
		Beta:            r.SummaryDetail.Beta.Raw,
		High52:          r.SummaryDetail.FiftyTwoWeekHigh.Raw,
		Low52:           r.SummaryDetail.FiftyTwoWeekLow.Raw,
	}, nil
}

// fetchMomentum computes the week and month price changes, in percent,
// from one month of daily closes.
func (y *YahooMarket) fetchMomentum(ctx context.Context, ticker string) (week, month float64, err error) {
	q := url.Values{}
	q.Set("range", "1mo")
	q.Set("interval", "1d")
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", y.cfg.BaseURL, url.PathEscape(ticker), q.Encode())

	var body dto.ChartResponse
	if err := y.getJSON(ctx, u, &body); err != nil {
		return 0, 0, err
	}
	if body.Chart.Error != nil {
		return 0, 0, fmt.Errorf("yahoo chart: %s", body.Chart.Error.Description)
	}
	if len(body.Chart.Result) == 0 || len(body.Chart.Result[0].Indicators.Quote) == 0 {
		return 0, 0, fmt.Errorf("yahoo chart: no result for %s", ticker)
	}

	closes := make([]float64, 0, len(body.Chart.Result[0].Indicators.Quote[0].Close))
	for _, c := range body.Chart.Result[0].Indicators.Quote[0].Close {
		if c != nil {
			closes = append(closes, *c)
		}
	}
	if len(closes) < 2 {
		return 0, 0, fmt.Errorf("yahoo chart: not enough closes for %s", ticker)
	}

	last := closes[len(closes)-1]
	month = pctChange(closes[0], last)

	weekIdx := len(closes) - 1 - weekBars
	if weekIdx < 0 {
		weekIdx = 0
	}
	week = pctChange(closes[weekIdx], last)

	return week, month, nil
}

func pctChange(from, to float64) float64 {
	if from == 0 {
		return 0
	}
	return (to - from) / from * 100
}

func (y *YahooMarket) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	// Yahoo rejects requests without a browser-like agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; stockradar/1.0)")

	res, err := y.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("yahoo http %d", res.StatusCode)
	}

	return json.NewDecoder(res.Body).Decode(out)
}
