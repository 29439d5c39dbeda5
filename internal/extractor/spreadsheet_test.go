package extractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/tariff-tracker/backend/internal/fetch"
)

// buildWorkbook creates an xlsx with two sheets: the default first sheet and
// a "Profiles" sheet holding headerRows header rows followed by dataRows
// rows of the form [country, rate-N].
func buildWorkbook(t *testing.T, headerRows, dataRows int) []byte {
	t.Helper()

	f := excelize.NewFile()
	if _, err := f.NewSheet("Profiles"); err != nil {
		t.Fatalf("NewSheet: %v", err)
	}

	row := 1
	for i := 0; i < headerRows; i++ {
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow("Profiles", cell, &[]interface{}{fmt.Sprintf("header %d", i)}); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
		row++
	}
	for i := 0; i < dataRows; i++ {
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow("Profiles", cell, &[]interface{}{fmt.Sprintf("country %d", i), fmt.Sprintf("rate-%d", i)}); err != nil {
			t.Fatalf("SetSheetRow: %v", err)
		}
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return buf.Bytes()
}

func serveBytes(t *testing.T, data []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSpreadsheetPreview(t *testing.T) {
	srv := serveBytes(t, buildWorkbook(t, 6, 12))

	rows, err := newTestExtractor().SpreadsheetPreview(context.Background(), srv.URL, 1, 6, 10)
	if err != nil {
		t.Fatalf("SpreadsheetPreview() error = %v", err)
	}
	if len(rows) != 10 {
		t.Fatalf("SpreadsheetPreview() returned %d rows, want 10", len(rows))
	}
	if rows[0][0] != "country 0" || rows[0][1] != "rate-0" {
		t.Errorf("first row = %v, want [country 0 rate-0]", rows[0])
	}
	if rows[9][0] != "country 9" {
		t.Errorf("last row starts with %q, want %q", rows[9][0], "country 9")
	}
}

func TestSpreadsheetPreviewFewerRowsThanLimit(t *testing.T) {
	srv := serveBytes(t, buildWorkbook(t, 6, 3))

	rows, err := newTestExtractor().SpreadsheetPreview(context.Background(), srv.URL, 1, 6, 10)
	if err != nil {
		t.Fatalf("SpreadsheetPreview() error = %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("SpreadsheetPreview() returned %d rows, want 3", len(rows))
	}
}

func TestSpreadsheetPreviewSkipExceedsRows(t *testing.T) {
	srv := serveBytes(t, buildWorkbook(t, 2, 1))

	rows, err := newTestExtractor().SpreadsheetPreview(context.Background(), srv.URL, 1, 6, 10)
	if err != nil {
		t.Fatalf("SpreadsheetPreview() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("SpreadsheetPreview() returned %d rows, want 0", len(rows))
	}
}

func TestSpreadsheetPreviewNotAWorkbook(t *testing.T) {
	srv := serveBytes(t, []byte("<html>this is not a spreadsheet</html>"))

	_, err := newTestExtractor().SpreadsheetPreview(context.Background(), srv.URL, 1, 6, 10)

	var parseErr *fetch.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("SpreadsheetPreview() error = %v, want *fetch.ParseError", err)
	}
}

func TestSpreadsheetPreviewSheetIndexOutOfRange(t *testing.T) {
	srv := serveBytes(t, buildWorkbook(t, 0, 1))

	_, err := newTestExtractor().SpreadsheetPreview(context.Background(), srv.URL, 5, 0, 10)

	var parseErr *fetch.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("SpreadsheetPreview() error = %v, want *fetch.ParseError", err)
	}
}

func TestSpreadsheetPreviewFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestExtractor().SpreadsheetPreview(context.Background(), srv.URL, 1, 6, 10)

	var fetchErr *fetch.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("SpreadsheetPreview() error = %v, want *fetch.FetchError", err)
	}
}
