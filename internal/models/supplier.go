package models

type Supplier struct {
	Base
	Name          string  `json:"name" db:"name"`
	ContactPerson *string `json:"contact_person" db:"contact_person"`
	Email         *string `json:"email" db:"email"`
	Phone         *string `json:"phone" db:"phone"`
	Address       *string `json:"address" db:"address"`
	Notes         *string `json:"notes" db:"notes"`
}
