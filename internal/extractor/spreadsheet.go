package extractor

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tariff-tracker/backend/internal/fetch"
	"github.com/tariff-tracker/backend/pkg/models"
)

// SpreadsheetPreview fetches an xlsx resource, opens the sheet at sheetIndex
// (0-based), drops skipRows header rows and returns at most limit rows
// verbatim. Rows keep whatever column shape the source sheet has.
func (e *Extractor) SpreadsheetPreview(ctx context.Context, fileURL string, sheetIndex, skipRows, limit int) ([]models.SheetRow, error) {
	body, _, err := e.client.Get(ctx, fileURL)
	if err != nil {
		return nil, err
	}

	wb, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		return nil, &fetch.ParseError{URL: fileURL, Err: err}
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if sheetIndex < 0 || sheetIndex >= len(sheets) {
		return nil, &fetch.ParseError{
			URL: fileURL,
			Err: fmt.Errorf("sheet index %d out of range, workbook has %d sheets", sheetIndex, len(sheets)),
		}
	}

	rows, err := wb.GetRows(sheets[sheetIndex])
	if err != nil {
		return nil, &fetch.ParseError{URL: fileURL, Err: err}
	}

	if skipRows >= len(rows) {
		return []models.SheetRow{}, nil
	}
	rows = rows[skipRows:]
	if len(rows) > limit {
		rows = rows[:limit]
	}

	preview := make([]models.SheetRow, 0, len(rows))
	for _, row := range rows {
		preview = append(preview, models.SheetRow(row))
	}
	return preview, nil
}
