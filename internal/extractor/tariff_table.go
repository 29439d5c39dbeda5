package extractor

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/tariff-tracker/backend/internal/fetch"
	"github.com/tariff-tracker/backend/pkg/logger"
	"github.com/tariff-tracker/backend/pkg/models"
)

// TariffTable fetches an HTML page and extracts one TariffRecord per row
// matching rowSelector. Cells map to fields by position (0 hs code, 1 product,
// 2 rate, 3 unit, 4 effective date) — header text is never consulted, so a
// source layout change misassigns fields rather than failing. Rows with fewer
// than minColumns cells yield no record; the drop is logged at debug level.
func (e *Extractor) TariffTable(ctx context.Context, pageURL, rowSelector string, minColumns int) ([]models.TariffRecord, error) {
	body, _, err := e.client.Get(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &fetch.ParseError{URL: pageURL, Err: err}
	}

	var records []models.TariffRecord
	doc.Find(rowSelector).Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < minColumns {
			logger.Log.Debug().
				Int("row", i).
				Int("cells", cells.Length()).
				Int("min_columns", minColumns).
				Msg("skipping short table row")
			return
		}

		cell := func(idx int) string {
			return strings.TrimSpace(cells.Eq(idx).Text())
		}

		records = append(records, models.TariffRecord{
			HSCode:        cell(0),
			Product:       cell(1),
			TariffRate:    cell(2),
			Unit:          cell(3),
			EffectiveDate: cell(4),
		})
	})

	return records, nil
}
