package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/tariff-tracker/backend/internal/config"
	"github.com/tariff-tracker/backend/pkg/models"
)

// Fixed extraction parameters for the three remote sources, matching the
// shapes the sources currently publish.
const (
	usitcRowSelector = "#search-results tbody tr"
	usitcMinColumns  = 5

	wtoSheetIndex   = 1
	wtoSkipRows     = 6
	wtoPreviewLimit = 10

	ustrContainerSelector = ".view-content"
	ustrSuffixFilter      = ".pdf"
	ustrUpdatesLimit      = 5
)

type TariffSource interface {
	TariffTable(ctx context.Context, pageURL, rowSelector string, minColumns int) ([]models.TariffRecord, error)
	SpreadsheetPreview(ctx context.Context, fileURL string, sheetIndex, skipRows, limit int) ([]models.SheetRow, error)
	LinkList(ctx context.Context, pageURL, containerSelector, suffixFilter string, limit int) ([]string, error)
}

type WatchlistStore interface {
	Add(ctx context.Context, query string, country models.Country, tariffType models.TariffType) (*models.WatchlistEntry, error)
	ListAllNewestFirst(ctx context.Context) ([]models.WatchlistEntry, error)
}

type Notifier interface {
	Notify(ctx context.Context, subject, body string) error
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	cfg      *config.Config
	source   TariffSource
	store    WatchlistStore
	notifier Notifier // nil when mail credentials are absent
}

func New(cfg *config.Config, source TariffSource, store WatchlistStore, notifier Notifier) *Handler {
	return &Handler{
		cfg:      cfg,
		source:   source,
		store:    store,
		notifier: notifier,
	}
}

func (h *Handler) SetupRoutes(app *fiber.App) {
	app.Get("/health", h.Health)

	api := app.Group("/api")
	api.Get("/tariffs/search", h.SearchTariffs)
	api.Get("/tariffs/wto", h.WTOPreview)
	api.Get("/tariffs/mock", h.MockTariffs)
	api.Get("/tariffs/trend", h.Trend)
	api.Get("/updates/ustr", h.USTRUpdates)
	api.Get("/watchlist", h.ListWatchlist)
	api.Post("/watchlist", h.AddWatchlist)
	api.Get("/dashboard", h.Dashboard)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
