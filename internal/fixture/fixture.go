// Package fixture provides the static placeholder data shown alongside live
// results. It is deliberately separate from the extractor: nothing here is
// fetched, and nothing here should ever be mistaken for live data.
package fixture

import (
	"strings"

	"github.com/tariff-tracker/backend/pkg/models"
)

type Row struct {
	Product     string            `json:"product"`
	HSCode      string            `json:"hs_code"`
	Country     models.Country    `json:"country"`
	TariffType  models.TariffType `json:"tariff_type"`
	RatePct     float64           `json:"rate_pct"`
	LastUpdated string            `json:"last_updated"`
}

var rows = []Row{
	{"Green Tea", "0902.10", models.CountryUnitedStates, models.TariffApplied, 6.4, "2025-04-01"},
	{"Black Tea", "0902.30", models.CountryUnitedStates, models.TariffApplied, 8.0, "2025-04-01"},
	{"Tapioca Pearls", "1903.00", models.CountryUnitedStates, models.TariffApplied, 5.0, "2025-04-01"},
}

// Filter returns the mock rows matching country and tariff type. A non-empty
// query additionally requires a case-insensitive product-name match or an
// HS-code substring match.
func Filter(query string, country models.Country, tariffType models.TariffType) []Row {
	matched := []Row{}
	for _, r := range rows {
		if r.Country != country || r.TariffType != tariffType {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(r.Product), strings.ToLower(query)) &&
			!strings.Contains(r.HSCode, query) {
			continue
		}
		matched = append(matched, r)
	}
	return matched
}

// Trend returns the fabricated month-end rate series used by the trend chart.
// It is placeholder data, not history.
func Trend() []models.TrendPoint {
	return []models.TrendPoint{
		{Date: "2024-01-31", Rates: map[string]float64{"Green Tea": 5.0, "Black Tea": 7.5}},
		{Date: "2024-02-29", Rates: map[string]float64{"Green Tea": 5.5, "Black Tea": 7.5}},
		{Date: "2024-03-31", Rates: map[string]float64{"Green Tea": 6.0, "Black Tea": 7.8}},
		{Date: "2024-04-30", Rates: map[string]float64{"Green Tea": 6.4, "Black Tea": 8.0}},
		{Date: "2024-05-31", Rates: map[string]float64{"Green Tea": 6.4, "Black Tea": 8.0}},
	}
}
