package models

import "github.com/google/uuid"

type InventoryItem struct {
	Base
	ItemNumber      string     `json:"item_number" db:"item_number"`
	Name            string     `json:"name" db:"name"`
	Description     *string    `json:"description" db:"description"`
	Category        *string    `json:"category" db:"category"`
	Unit            *string    `json:"unit" db:"unit"`
	Quantity        int        `json:"quantity" db:"quantity"`
	MinimumQuantity int        `json:"minimum_quantity" db:"minimum_quantity"`
	CostPerUnit     *float64   `json:"cost_per_unit" db:"cost_per_unit"`
	LocationID      *uuid.UUID `json:"location_id" db:"location_id"`
	SupplierID      *uuid.UUID `json:"supplier_id" db:"supplier_id"`
	Notes           *string    `json:"notes" db:"notes"`

	Location *Location `json:"location,omitempty" db:"-"`
	Supplier *Supplier `json:"supplier,omitempty" db:"-"`
}

// BelowMinimum reports whether stock has dropped to or under the reorder point.
func (i *InventoryItem) BelowMinimum() bool {
	return i.Quantity <= i.MinimumQuantity
}
