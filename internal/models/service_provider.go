package models

type ServiceProvider struct {
	Base
	Name  string  `json:"name" db:"name"`
	Email *string `json:"email" db:"email"`
	Phone *string `json:"phone" db:"phone"`
	Role  *string `json:"role" db:"role"`
	Notes *string `json:"notes" db:"notes"`
}
