package repositories

import "mainthub/internal/models"

// ServiceProviderKind backs the provider picker, so search is capped.
var ServiceProviderKind = &Kind[models.ServiceProvider]{
	Name:  "service_provider",
	Table: "service_provider",
	Columns: []Column{
		{Name: "name", Type: TextColumn},
		{Name: "email", Type: TextColumn},
		{Name: "phone", Type: TextColumn},
		{Name: "role", Type: TextColumn},
		{Name: "notes", Type: TextColumn},
	},
	Required:      []string{"name"},
	SearchColumns: []string{"name", "email"},
	OrderBy:       "name",
	SearchLimit:   10,
	Targets: func(p *models.ServiceProvider) []any {
		return []any{&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.Name, &p.Email, &p.Phone, &p.Role, &p.Notes}
	},
}

func NewServiceProviderRepository(db Database) Repository[models.ServiceProvider] {
	return NewRepository(db, ServiceProviderKind)
}
