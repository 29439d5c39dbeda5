package handler

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tariff-tracker/backend/internal/fixture"
	"github.com/tariff-tracker/backend/pkg/logger"
	"github.com/tariff-tracker/backend/pkg/models"
)

// SearchTariffs scrapes the USITC lookup page for a product name or HS code.
func (h *Handler) SearchTariffs(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		return c.Status(400).JSON(ErrorResponse{Error: "query is required"})
	}

	records, err := h.source.TariffTable(c.Context(), h.searchURL(query), usitcRowSelector, usitcMinColumns)
	if err != nil {
		logger.Log.Error().Err(err).Str("query", query).Msg("usitc fetch failed")
		return c.Status(502).JSON(ErrorResponse{Error: err.Error()})
	}

	if records == nil {
		records = []models.TariffRecord{}
	}
	return c.JSON(fiber.Map{"records": records, "count": len(records)})
}

func (h *Handler) searchURL(query string) string {
	return h.cfg.USITCURL + "?query=" + url.QueryEscape(query)
}

// WTOPreview returns the first rows of the WTO tariff-profiles workbook.
func (h *Handler) WTOPreview(c *fiber.Ctx) error {
	rows, err := h.source.SpreadsheetPreview(c.Context(), h.cfg.WTOProfilesURL, wtoSheetIndex, wtoSkipRows, wtoPreviewLimit)
	if err != nil {
		logger.Log.Error().Err(err).Msg("wto preview fetch failed")
		return c.Status(502).JSON(ErrorResponse{Error: err.Error()})
	}
	return c.JSON(fiber.Map{"rows": rows})
}

// USTRUpdates lists the most recent Section 301 notice PDFs.
func (h *Handler) USTRUpdates(c *fiber.Ctx) error {
	links, err := h.source.LinkList(c.Context(), h.cfg.USTRUpdatesURL, ustrContainerSelector, ustrSuffixFilter, ustrUpdatesLimit)
	if err != nil {
		logger.Log.Error().Err(err).Msg("ustr updates fetch failed")
		return c.Status(502).JSON(ErrorResponse{Error: err.Error()})
	}

	if links == nil {
		links = []string{}
	}
	return c.JSON(fiber.Map{"links": links})
}

// MockTariffs serves the static placeholder table, filtered like the live
// search but never touching the network.
func (h *Handler) MockTariffs(c *fiber.Ctx) error {
	country := models.Country(c.Query("country", string(models.CountryUnitedStates)))
	tariffType := models.TariffType(c.Query("tariff_type", string(models.TariffApplied)))
	if !country.Valid() {
		return c.Status(400).JSON(ErrorResponse{Error: "unknown country"})
	}
	if !tariffType.Valid() {
		return c.Status(400).JSON(ErrorResponse{Error: "unknown tariff type"})
	}

	rows := fixture.Filter(strings.TrimSpace(c.Query("query")), country, tariffType)
	return c.JSON(fiber.Map{"rows": rows})
}

// Trend serves the fabricated trend series for the chart.
func (h *Handler) Trend(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"points": fixture.Trend()})
}
