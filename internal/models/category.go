package models

// Category is a lookup row offered when classifying assets.
type Category struct {
	Base
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
}
