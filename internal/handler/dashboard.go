package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tariff-tracker/backend/internal/fixture"
	"github.com/tariff-tracker/backend/pkg/logger"
	"github.com/tariff-tracker/backend/pkg/models"
)

type TariffPanel struct {
	Records []models.TariffRecord `json:"records"`
	Error   string                `json:"error,omitempty"`
}

type SheetPanel struct {
	Rows  []models.SheetRow `json:"rows"`
	Error string            `json:"error,omitempty"`
}

type LinkPanel struct {
	Links []string `json:"links"`
	Error string   `json:"error,omitempty"`
}

type WatchlistPanel struct {
	Entries []models.WatchlistEntry `json:"entries"`
	Error   string                  `json:"error,omitempty"`
}

type DashboardResponse struct {
	Live      TariffPanel         `json:"live"`
	WTO       SheetPanel          `json:"wto"`
	USTR      LinkPanel           `json:"ustr"`
	Mock      []fixture.Row       `json:"mock"`
	Trend     []models.TrendPoint `json:"trend"`
	Watchlist WatchlistPanel      `json:"watchlist"`
}

// Dashboard renders every panel in one pass. The three remote sources are
// fetched sequentially and each failure stays inside its own panel as an
// inline message — one source being down never blanks the others.
func (h *Handler) Dashboard(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("query"))
	country := models.Country(c.Query("country", string(models.CountryUnitedStates)))
	tariffType := models.TariffType(c.Query("tariff_type", string(models.TariffApplied)))
	if !country.Valid() {
		return c.Status(400).JSON(ErrorResponse{Error: "unknown country"})
	}
	if !tariffType.Valid() {
		return c.Status(400).JSON(ErrorResponse{Error: "unknown tariff type"})
	}

	resp := DashboardResponse{
		Live:      TariffPanel{Records: []models.TariffRecord{}},
		WTO:       SheetPanel{Rows: []models.SheetRow{}},
		USTR:      LinkPanel{Links: []string{}},
		Mock:      fixture.Filter(query, country, tariffType),
		Trend:     fixture.Trend(),
		Watchlist: WatchlistPanel{Entries: []models.WatchlistEntry{}},
	}

	// Live results only apply to United States lookups, as on the source
	// site; other countries fall back to the mock panel alone.
	if query != "" && country == models.CountryUnitedStates {
		records, err := h.source.TariffTable(c.Context(), h.searchURL(query), usitcRowSelector, usitcMinColumns)
		if err != nil {
			logger.Log.Error().Err(err).Str("query", query).Msg("usitc fetch failed")
			resp.Live.Error = err.Error()
		} else if records != nil {
			resp.Live.Records = records
		}
	}

	rows, err := h.source.SpreadsheetPreview(c.Context(), h.cfg.WTOProfilesURL, wtoSheetIndex, wtoSkipRows, wtoPreviewLimit)
	if err != nil {
		logger.Log.Error().Err(err).Msg("wto preview fetch failed")
		resp.WTO.Error = err.Error()
	} else if rows != nil {
		resp.WTO.Rows = rows
	}

	links, err := h.source.LinkList(c.Context(), h.cfg.USTRUpdatesURL, ustrContainerSelector, ustrSuffixFilter, ustrUpdatesLimit)
	if err != nil {
		logger.Log.Error().Err(err).Msg("ustr updates fetch failed")
		resp.USTR.Error = err.Error()
	} else if links != nil {
		resp.USTR.Links = links
	}

	entries, err := h.store.ListAllNewestFirst(c.Context())
	if err != nil {
		logger.Log.Error().Err(err).Msg("watchlist list failed")
		resp.Watchlist.Error = "watchlist is unavailable"
	} else {
		resp.Watchlist.Entries = entries
	}

	return c.JSON(resp)
}
