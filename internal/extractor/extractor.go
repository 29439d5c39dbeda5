package extractor

import (
	"github.com/tariff-tracker/backend/internal/fetch"
)

// Extractor turns one remote resource into structured records. It holds no
// state beyond the shared HTTP client; every call fetches fresh.
type Extractor struct {
	client *fetch.Client
}

func New(client *fetch.Client) *Extractor {
	return &Extractor{client: client}
}
