package handler

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tariff-tracker/backend/pkg/logger"
	"github.com/tariff-tracker/backend/pkg/models"
)

type AddWatchlistRequest struct {
	Query      string            `json:"query"`
	Country    models.Country    `json:"country"`
	TariffType models.TariffType `json:"tariff_type"`
}

func (h *Handler) AddWatchlist(c *fiber.Ctx) error {
	var req AddWatchlistRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(ErrorResponse{Error: "invalid request body"})
	}

	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		return c.Status(400).JSON(ErrorResponse{Error: "query is required"})
	}
	if !req.Country.Valid() {
		return c.Status(400).JSON(ErrorResponse{Error: "unknown country"})
	}
	if !req.TariffType.Valid() {
		return c.Status(400).JSON(ErrorResponse{Error: "unknown tariff type"})
	}

	entry, err := h.store.Add(c.Context(), req.Query, req.Country, req.TariffType)
	if err != nil {
		logger.Log.Error().Err(err).Str("query", req.Query).Msg("watchlist add failed")
		return c.Status(503).JSON(ErrorResponse{Error: "failed to add to watchlist"})
	}

	// The entry is committed at this point; a failed alert is logged and
	// reported in the response, never surfaced as a save failure.
	notified := false
	if h.notifier != nil {
		body := fmt.Sprintf(
			"You added the following to your watchlist:\n\nProduct/HS Code: %s\nCountry: %s\nTariff Type: %s",
			req.Query, req.Country, req.TariffType,
		)
		if err := h.notifier.Notify(c.Context(), "New Tariff Watchlist Item Added", body); err != nil {
			logger.Log.Warn().Err(err).Msg("watchlist alert email failed")
		} else {
			notified = true
		}
	}

	return c.Status(201).JSON(fiber.Map{"entry": entry, "notified": notified})
}

// ListWatchlist degrades to an empty list with an inline error when the store
// is unavailable — lookups keep working regardless.
func (h *Handler) ListWatchlist(c *fiber.Ctx) error {
	entries, err := h.store.ListAllNewestFirst(c.Context())
	if err != nil {
		logger.Log.Error().Err(err).Msg("watchlist list failed")
		return c.JSON(fiber.Map{
			"entries": []models.WatchlistEntry{},
			"error":   "watchlist is unavailable",
		})
	}
	return c.JSON(fiber.Map{"entries": entries})
}
