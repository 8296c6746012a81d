package repositories

import "mainthub/internal/models"

var CategoryKind = &Kind[models.Category]{
	Name:  "category",
	Table: "categories",
	Columns: []Column{
		{Name: "name", Type: TextColumn},
		{Name: "description", Type: TextColumn},
	},
	Required:      []string{"name"},
	SearchColumns: []string{"name", "description"},
	OrderBy:       "name",
	Targets: func(c *models.Category) []any {
		return []any{&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.Name, &c.Description}
	},
}

func NewCategoryRepository(db Database) Repository[models.Category] {
	return NewRepository(db, CategoryKind)
}
