package repositories

import "mainthub/internal/models"

var LocationKind = &Kind[models.Location]{
	Name:  "location",
	Table: "locations",
	Columns: []Column{
		{Name: "name", Type: TextColumn},
		{Name: "description", Type: TextColumn},
		{Name: "parent_location_id", Type: UUIDColumn},
	},
	Required:      []string{"name"},
	SearchColumns: []string{"name", "description"},
	OrderBy:       "name",
	Targets: func(l *models.Location) []any {
		return []any{&l.ID, &l.CreatedAt, &l.UpdatedAt, &l.Name, &l.Description, &l.ParentLocationID}
	},
}

func NewLocationRepository(db Database) Repository[models.Location] {
	return NewRepository(db, LocationKind)
}
