package models

// TariffRecord is one row extracted from a tariff lookup table. All fields are
// kept as display text: source rates mix "6.4%", "Free" and ranges, and dates
// arrive in whatever format the source renders them in.
type TariffRecord struct {
	HSCode        string `json:"hs_code"`
	Product       string `json:"product"`
	TariffRate    string `json:"tariff_rate"`
	Unit          string `json:"unit"`
	EffectiveDate string `json:"effective_date"`
}

// SheetRow is a verbatim spreadsheet row. Column shape is whatever the source
// sheet defines; it is never normalized into TariffRecord.
type SheetRow []string

// TrendPoint is one point of the fabricated tariff trend series.
type TrendPoint struct {
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}
