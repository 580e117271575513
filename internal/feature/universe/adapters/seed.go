package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stockradar/internal/feature/universe/domain/entity"
)

// seedSymbol is one entry of the default universe.
type seedSymbol struct {
	ticker string
	sector string
}

// defaultUniverse is the curated list of popular tickers across sectors
// the radar starts with. Sectors here are display groupings, not GICS.
var defaultUniverse = []seedSymbol{
	// Tech giants
	{"AAPL", "Technology"}, {"MSFT", "Technology"}, {"GOOGL", "Technology"},
	{"AMZN", "Technology"}, {"META", "Technology"}, {"NVDA", "Technology"},
	{"TSLA", "Automotive"}, {"AVGO", "Technology"},
	// Cloud & software
	{"CRM", "Software"}, {"ADBE", "Software"}, {"NOW", "Software"},
	{"INTU", "Software"}, {"TEAM", "Software"}, {"PLTR", "Software"},
	{"SNOW", "Software"}, {"DDOG", "Software"},
	// Semiconductors
	{"AMD", "Semiconductors"}, {"INTC", "Semiconductors"}, {"QCOM", "Semiconductors"},
	{"MU", "Semiconductors"}, {"AMAT", "Semiconductors"}, {"LRCX", "Semiconductors"},
	{"KLAC", "Semiconductors"}, {"TSM", "Semiconductors"},
	// Finance
	{"JPM", "Finance"}, {"BAC", "Finance"}, {"GS", "Finance"}, {"MS", "Finance"},
	{"V", "Finance"}, {"MA", "Finance"}, {"PYPL", "Finance"}, {"SQ", "Finance"},
	// Consumer
	{"WMT", "Consumer"}, {"TGT", "Consumer"}, {"COST", "Consumer"}, {"NKE", "Consumer"},
	{"SBUX", "Consumer"}, {"MCD", "Consumer"}, {"DIS", "Consumer"}, {"NFLX", "Consumer"},
	// Healthcare
	{"JNJ", "Healthcare"}, {"UNH", "Healthcare"}, {"PFE", "Healthcare"},
	{"ABBV", "Healthcare"}, {"TMO", "Healthcare"}, {"DHR", "Healthcare"},
	{"LLY", "Healthcare"}, {"MRNA", "Healthcare"},
	// Energy
	{"XOM", "Energy"}, {"CVX", "Energy"}, {"COP", "Energy"},
	{"SLB", "Energy"}, {"EOG", "Energy"},
	// Automotive
	{"F", "Automotive"}, {"GM", "Automotive"}, {"RIVN", "Automotive"}, {"LCID", "Automotive"},
	// E-commerce & platforms
	{"SHOP", "E-commerce"}, {"ETSY", "E-commerce"}, {"MELI", "E-commerce"}, {"SPOT", "E-commerce"},
	// Aerospace & defense
	{"BA", "Aerospace"}, {"LMT", "Aerospace"}, {"RTX", "Aerospace"}, {"NOC", "Aerospace"},
	// Growth
	{"ROKU", "Growth"}, {"COIN", "Growth"}, {"RBLX", "Growth"},
	{"U", "Growth"}, {"DASH", "Growth"}, {"ABNB", "Growth"},
	// Cloud infrastructure
	{"NET", "Cloud"}, {"FSLY", "Cloud"}, {"DOCN", "Cloud"},
	// Cybersecurity
	{"CRWD", "Cybersecurity"}, {"ZS", "Cybersecurity"},
	{"PANW", "Cybersecurity"}, {"FTNT", "Cybersecurity"},
	// AI & hardware
	{"AI", "AI"}, {"SMCI", "AI"}, {"DELL", "AI"},
}

// EnsureSeeded inserts the default universe. Existing rows keep their
// state (deactivations and custom sort order survive restarts); only the
// sector grouping is refreshed.
func EnsureSeeded(ctx context.Context, db *gorm.DB) error {
	rows := make([]entity.Symbol, 0, len(defaultUniverse))
	for i, s := range defaultUniverse {
		rows = append(rows, entity.Symbol{
			Ticker:   s.ticker,
			Sector:   s.sector,
			IsActive: true,
			SortKey:  i,
		})
	}
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ticker"}},
		DoUpdates: clause.AssignmentColumns([]string{"sector"}),
	}).Create(&rows).Error
}
