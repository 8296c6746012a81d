package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type AssetStatus string

const (
	AssetInService    AssetStatus = "In Service"
	AssetOutOfService AssetStatus = "Out of Service"
	AssetScrapped     AssetStatus = "Scrapped"
	AssetSold         AssetStatus = "Sold"
	AssetOther        AssetStatus = "Other"
)

type Asset struct {
	Base
	AssetNumber  string       `json:"asset_number" db:"asset_number"`
	Name         string       `json:"name" db:"name"`
	Description  *string      `json:"description" db:"description"`
	Category     *string      `json:"category" db:"category"`
	Manufacturer *string      `json:"manufacturer" db:"manufacturer"`
	Model        *string      `json:"model" db:"model"`
	SerialNumber *string      `json:"serial_number" db:"serial_number"`
	PurchaseDate *time.Time   `json:"purchase_date" db:"purchase_date"`
	PurchaseCost *float64     `json:"purchase_cost" db:"purchase_cost"`
	Status       *AssetStatus `json:"status" db:"status"`
	LocationID   *uuid.UUID   `json:"location_id" db:"location_id"`
	Notes        *string      `json:"notes" db:"notes"`

	Location *Location `json:"location,omitempty" db:"-"`
}

// UnmarshalJSON accepts purchase_date as a bare date, which is how the store
// renders date columns inside embedded relation objects.
func (a *Asset) UnmarshalJSON(data []byte) error {
	type plain Asset
	aux := struct {
		*plain
		PurchaseDate *string `json:"purchase_date"`
	}{plain: (*plain)(a)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	a.PurchaseDate = nil
	if aux.PurchaseDate == nil || *aux.PurchaseDate == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339Nano} {
		if t, err := time.Parse(layout, *aux.PurchaseDate); err == nil {
			a.PurchaseDate = &t
			return nil
		}
	}
	return fmt.Errorf("invalid purchase_date %q", *aux.PurchaseDate)
}
