package repositories

import (
	"mainthub/internal/models"

	"github.com/google/uuid"
)

var AssetKind = &Kind[models.Asset]{
	Name:  "asset",
	Table: "assets",
	Columns: []Column{
		{Name: "asset_number", Type: TextColumn},
		{Name: "name", Type: TextColumn},
		{Name: "description", Type: TextColumn},
		{Name: "category", Type: TextColumn},
		{Name: "manufacturer", Type: TextColumn},
		{Name: "model", Type: TextColumn},
		{Name: "serial_number", Type: TextColumn},
		{Name: "purchase_date", Type: DateColumn},
		{Name: "purchase_cost", Type: NumericColumn},
		{Name: "status", Type: TextColumn},
		{Name: "location_id", Type: UUIDColumn},
		{Name: "notes", Type: TextColumn},
	},
	Required:      []string{"asset_number", "name"},
	SearchColumns: []string{"asset_number", "name", "description", "manufacturer", "model", "serial_number"},
	OrderBy:       "asset_number",
	Relations: []Relation[models.Asset]{
		Embed("location", "locations", "location_id",
			func(a *models.Asset) *uuid.UUID { return a.LocationID },
			func(a *models.Asset, l *models.Location) { a.Location = l }),
	},
	Targets: func(a *models.Asset) []any {
		return []any{
			&a.ID, &a.CreatedAt, &a.UpdatedAt,
			&a.AssetNumber, &a.Name, &a.Description, &a.Category, &a.Manufacturer, &a.Model,
			&a.SerialNumber, &a.PurchaseDate, &a.PurchaseCost, &a.Status, &a.LocationID, &a.Notes,
		}
	},
}

func NewAssetRepository(db Database) Repository[models.Asset] {
	return NewRepository(db, AssetKind)
}
