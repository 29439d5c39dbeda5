package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Country string

const (
	CountryUnitedStates Country = "United States"
	CountryChina        Country = "China"
	CountryEU           Country = "EU"
	CountryCanada       Country = "Canada"
	CountryMexico       Country = "Mexico"
)

func (c Country) Valid() bool {
	switch c {
	case CountryUnitedStates, CountryChina, CountryEU, CountryCanada, CountryMexico:
		return true
	}
	return false
}

type TariffType string

const (
	TariffApplied    TariffType = "Applied"
	TariffBound      TariffType = "Bound"
	TariffSection301 TariffType = "Section 301"
	TariffTRQ        TariffType = "TRQ"
)

func (t TariffType) Valid() bool {
	switch t {
	case TariffApplied, TariffBound, TariffSection301, TariffTRQ:
		return true
	}
	return false
}

// WatchlistEntry is a saved search. CreatedAt is assigned by the store at
// write time, never by the caller, so listing order is authoritative.
type WatchlistEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Query      string             `bson:"query" json:"query"`
	Country    Country            `bson:"country" json:"country"`
	TariffType TariffType         `bson:"tariff_type" json:"tariff_type"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
