package extractor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/tariff-tracker/backend/internal/fetch"
	"github.com/tariff-tracker/backend/pkg/logger"
	"github.com/tariff-tracker/backend/pkg/models"
)

func TestMain(m *testing.M) {
	logger.Init(true)
	os.Exit(m.Run())
}

func newTestExtractor() *Extractor {
	return New(fetch.NewClient(5 * time.Second))
}

func serveHTML(t *testing.T, html string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(html))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTariffTable(t *testing.T) {
	tests := []struct {
		name       string
		html       string
		minColumns int
		want       []models.TariffRecord
	}{
		{
			name: "five cell rows map positionally",
			html: `<html><body><table id="search-results"><tbody>
				<tr><td>0902.10</td><td>Green Tea</td><td>6.4%</td><td>kg</td><td>2025-04-01</td></tr>
				<tr><td>0902.30</td><td>Black Tea</td><td>8.0%</td><td>kg</td><td>2025-04-01</td></tr>
			</tbody></table></body></html>`,
			minColumns: 5,
			want: []models.TariffRecord{
				{HSCode: "0902.10", Product: "Green Tea", TariffRate: "6.4%", Unit: "kg", EffectiveDate: "2025-04-01"},
				{HSCode: "0902.30", Product: "Black Tea", TariffRate: "8.0%", Unit: "kg", EffectiveDate: "2025-04-01"},
			},
		},
		{
			name: "short row yields no record and no error",
			html: `<html><body><table id="search-results"><tbody>
				<tr><td>0902.10</td><td>Green Tea</td><td>6.4%</td></tr>
			</tbody></table></body></html>`,
			minColumns: 5,
			want:       nil,
		},
		{
			name: "short rows are skipped, full rows kept",
			html: `<html><body><table id="search-results"><tbody>
				<tr><td>0902.10</td><td>Green Tea</td><td>6.4%</td></tr>
				<tr><td>0902.30</td><td>Black Tea</td><td>8.0%</td><td>kg</td><td>2025-04-01</td></tr>
				<tr><td>1903.00</td></tr>
			</tbody></table></body></html>`,
			minColumns: 5,
			want: []models.TariffRecord{
				{HSCode: "0902.30", Product: "Black Tea", TariffRate: "8.0%", Unit: "kg", EffectiveDate: "2025-04-01"},
			},
		},
		{
			name:       "no matching rows",
			html:       `<html><body><p>no table here</p></body></html>`,
			minColumns: 5,
			want:       nil,
		},
		{
			name: "extra cells beyond the fifth are ignored",
			html: `<html><body><table id="search-results"><tbody>
				<tr><td>0902.10</td><td>Green Tea</td><td>6.4%</td><td>kg</td><td>2025-04-01</td><td>extra</td></tr>
			</tbody></table></body></html>`,
			minColumns: 5,
			want: []models.TariffRecord{
				{HSCode: "0902.10", Product: "Green Tea", TariffRate: "6.4%", Unit: "kg", EffectiveDate: "2025-04-01"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serveHTML(t, tt.html)

			records, err := newTestExtractor().TariffTable(context.Background(), srv.URL, "#search-results tbody tr", tt.minColumns)
			if err != nil {
				t.Fatalf("TariffTable() error = %v", err)
			}
			if len(records) != len(tt.want) {
				t.Fatalf("TariffTable() returned %d records, want %d", len(records), len(tt.want))
			}
			for i, want := range tt.want {
				if records[i] != want {
					t.Errorf("record %d = %+v, want %+v", i, records[i], want)
				}
			}
		})
	}
}

func TestTariffTableServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	records, err := newTestExtractor().TariffTable(context.Background(), srv.URL, "#search-results tbody tr", 5)
	if err == nil {
		t.Fatal("TariffTable() expected error for status 500")
	}

	var fetchErr *fetch.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("TariffTable() error = %T, want *fetch.FetchError", err)
	}
	if fetchErr.Status != http.StatusInternalServerError {
		t.Errorf("FetchError.Status = %d, want %d", fetchErr.Status, http.StatusInternalServerError)
	}
	if len(records) != 0 {
		t.Errorf("TariffTable() returned %d records on error, want 0", len(records))
	}
}

func TestTariffTableTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	ex := New(fetch.NewClient(50 * time.Millisecond))
	_, err := ex.TariffTable(context.Background(), srv.URL, "tr", 5)

	var fetchErr *fetch.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("TariffTable() error = %v, want *fetch.FetchError", err)
	}
}
