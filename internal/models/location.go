package models

import "github.com/google/uuid"

type Location struct {
	Base
	Name             string     `json:"name" db:"name"`
	Description      *string    `json:"description" db:"description"`
	ParentLocationID *uuid.UUID `json:"parent_location_id" db:"parent_location_id"`
}
