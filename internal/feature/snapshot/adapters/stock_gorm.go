// Package adapters provides the repository implementations for the
// snapshot feature.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stockradar/internal/feature/snapshot/domain/entity"
	"stockradar/internal/feature/snapshot/usecase"
)

type stockGorm struct {
	db *gorm.DB
}

var _ usecase.StockRepository = (*stockGorm)(nil)

// NewStockRepository creates a snapshot repository backed by the given DB.
func NewStockRepository(db *gorm.DB) *stockGorm {
	return &stockGorm{db: db}
}

// StockModel is the persistence model for one snapshot row. The snapshot
// keeps the latest fundamentals per ticker; each refresh overwrites in
// place.
type StockModel struct {
	ID     uint   `gorm:"primaryKey"`
	Ticker string `gorm:"size:20;not null;uniqueIndex"`
	Sector string `gorm:"size:100;not null;default:''"`

	Price       float64 `gorm:"not null"`
	ChangePct   float64 `gorm:"not null;default:0"`
	WeekChange  float64 `gorm:"not null;default:0"`
	MonthChange float64 `gorm:"not null;default:0"`

	Volume    int64   `gorm:"not null;default:0"`
	MarketCap float64 `gorm:"not null;default:0"`

	OperatingMargin float64 `gorm:"not null;default:0"`
	RevenueGrowth   float64 `gorm:"not null;default:0"`
	RuleOf40        float64 `gorm:"not null;default:0"`

	PERatio      float64 `gorm:"not null;default:0"`
	Beta         float64 `gorm:"not null;default:0"`
	Volatility   float64 `gorm:"not null;default:0"`
	DebtToEquity float64 `gorm:"not null;default:0"`

	High52 float64 `gorm:"not null;default:0"`
	Low52  float64 `gorm:"not null;default:0"`

	FetchedAt time.Time `gorm:"not null;index"`
}

func (StockModel) TableName() string {
	return "stocks"
}

func toModel(e entity.Stock) StockModel {
	return StockModel{
		Ticker:          e.Ticker,
		Sector:          e.Sector,
		Price:           e.Price,
		ChangePct:       e.ChangePct,
		WeekChange:      e.WeekChange,
		MonthChange:     e.MonthChange,
		Volume:          e.Volume,
		MarketCap:       e.MarketCap,
		OperatingMargin: e.OperatingMargin,
		RevenueGrowth:   e.RevenueGrowth,
		RuleOf40:        e.RuleOf40,
		PERatio:         e.PERatio,
		Beta:            e.Beta,
		Volatility:      e.Volatility,
		DebtToEquity:    e.DebtToEquity,
		High52:          e.High52,
		Low52:           e.Low52,
		FetchedAt:       e.FetchedAt,
	}
}

func toEntity(m StockModel) entity.Stock {
	return entity.Stock{
		Ticker:          m.Ticker,
		Sector:          m.Sector,
		Price:           m.Price,
		ChangePct:       m.ChangePct,
		WeekChange:      m.WeekChange,
		MonthChange:     m.MonthChange,
		Volume:          m.Volume,
		MarketCap:       m.MarketCap,
		OperatingMargin: m.OperatingMargin,
		RevenueGrowth:   m.RevenueGrowth,
		RuleOf40:        m.RuleOf40,
		PERatio:         m.PERatio,
		Beta:            m.Beta,
		Volatility:      m.Volatility,
		DebtToEquity:    m.DebtToEquity,
		High52:          m.High52,
		Low52:           m.Low52,
		FetchedAt:       m.FetchedAt,
	}
}

// UpsertBatch writes the snapshot rows, replacing any existing row for the
// same ticker.
func (r *stockGorm) UpsertBatch(ctx context.Context, stocks []entity.Stock) error {
	if len(stocks) == 0 {
		return nil
	}
	ms := make([]StockModel, 0, len(stocks))
	for _, e := range stocks {
		ms = append(ms, toModel(e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ticker"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"sector", "price", "change_pct", "week_change", "month_change",
			"volume", "market_cap", "operating_margin", "revenue_growth",
			"rule_of40", "pe_ratio", "beta", "volatility", "debt_to_equity",
			"high52", "low52", "fetched_at",
		}),
	}).Create(&ms).Error
}

// FindLatest returns every snapshot row ordered by ticker.
func (r *stockGorm) FindLatest(ctx context.Context) ([]entity.Stock, error) {
	var rows []StockModel
	if err := r.db.WithContext(ctx).
		Order("ticker ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Stock, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}
