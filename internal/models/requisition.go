package models

import (
	"time"

	"github.com/google/uuid"
)

// Requisition is a purchase request to a supplier. RequisitionNumber is
// generated by the store on insert.
type Requisition struct {
	Base
	RequisitionNumber string     `json:"requisition_number" db:"requisition_number"`
	SupplierID        *uuid.UUID `json:"supplier_id" db:"supplier_id"`
	Status            string     `json:"status" db:"status"`
	RequestedBy       *uuid.UUID `json:"requested_by" db:"requested_by"`
	RequestedDate     *time.Time `json:"requested_date" db:"requested_date"`
	RequiredDate      *time.Time `json:"required_date" db:"required_date"`
	Notes             *string    `json:"notes" db:"notes"`

	Supplier *Supplier `json:"supplier,omitempty" db:"-"`
}
