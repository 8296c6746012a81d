package repositories

import (
	"mainthub/internal/models"

	"github.com/google/uuid"
)

var InventoryItemKind = &Kind[models.InventoryItem]{
	Name:  "inventory_item",
	Table: "inventory",
	Columns: []Column{
		{Name: "item_number", Type: TextColumn},
		{Name: "name", Type: TextColumn},
		{Name: "description", Type: TextColumn},
		{Name: "category", Type: TextColumn},
		{Name: "unit", Type: TextColumn},
		{Name: "quantity", Type: IntColumn},
		{Name: "minimum_quantity", Type: IntColumn},
		{Name: "cost_per_unit", Type: NumericColumn},
		{Name: "location_id", Type: UUIDColumn},
		{Name: "supplier_id", Type: UUIDColumn},
		{Name: "notes", Type: TextColumn},
	},
	Required:      []string{"item_number", "name", "quantity", "minimum_quantity"},
	SearchColumns: []string{"item_number", "name", "description", "category"},
	OrderBy:       "item_number",
	Relations: []Relation[models.InventoryItem]{
		Embed("location", "locations", "location_id",
			func(i *models.InventoryItem) *uuid.UUID { return i.LocationID },
			func(i *models.InventoryItem, l *models.Location) { i.Location = l }),
		Embed("supplier", "suppliers", "supplier_id",
			func(i *models.InventoryItem) *uuid.UUID { return i.SupplierID },
			func(i *models.InventoryItem, s *models.Supplier) { i.Supplier = s }),
	},
	Targets: func(i *models.InventoryItem) []any {
		return []any{
			&i.ID, &i.CreatedAt, &i.UpdatedAt,
			&i.ItemNumber, &i.Name, &i.Description, &i.Category, &i.Unit, &i.Quantity,
			&i.MinimumQuantity, &i.CostPerUnit, &i.LocationID, &i.SupplierID, &i.Notes,
		}
	},
}

func NewInventoryItemRepository(db Database) Repository[models.InventoryItem] {
	return NewRepository(db, InventoryItemKind)
}
