package repositories

import "mainthub/internal/models"

var SupplierKind = &Kind[models.Supplier]{
	Name:  "supplier",
	Table: "suppliers",
	Columns: []Column{
		{Name: "name", Type: TextColumn},
		{Name: "contact_person", Type: TextColumn},
		{Name: "email", Type: TextColumn},
		{Name: "phone", Type: TextColumn},
		{Name: "address", Type: TextColumn},
		{Name: "notes", Type: TextColumn},
	},
	Required:      []string{"name"},
	SearchColumns: []string{"name", "contact_person", "email"},
	OrderBy:       "name",
	Targets: func(s *models.Supplier) []any {
		return []any{&s.ID, &s.CreatedAt, &s.UpdatedAt, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.Address, &s.Notes}
	},
}

func NewSupplierRepository(db Database) Repository[models.Supplier] {
	return NewRepository(db, SupplierKind)
}
