package repositories

import (
	"mainthub/internal/models"

	"github.com/google/uuid"
)

var RequisitionKind = &Kind[models.Requisition]{
	Name:  "requisition",
	Table: "requisitions",
	Columns: []Column{
		{Name: "requisition_number", Type: TextColumn},
		{Name: "supplier_id", Type: UUIDColumn},
		{Name: "status", Type: TextColumn},
		{Name: "requested_by", Type: UUIDColumn},
		{Name: "requested_date", Type: DateColumn},
		{Name: "required_date", Type: DateColumn},
		{Name: "notes", Type: TextColumn},
	},
	Required:      []string{"status", "requested_date"},
	SearchColumns: []string{"requisition_number", "status", "notes"},
	OrderBy:       "requisition_number",
	Relations: []Relation[models.Requisition]{
		Embed("supplier", "suppliers", "supplier_id",
			func(r *models.Requisition) *uuid.UUID { return r.SupplierID },
			func(r *models.Requisition, s *models.Supplier) { r.Supplier = s }),
	},
	Targets: func(r *models.Requisition) []any {
		return []any{
			&r.ID, &r.CreatedAt, &r.UpdatedAt,
			&r.RequisitionNumber, &r.SupplierID, &r.Status, &r.RequestedBy,
			&r.RequestedDate, &r.RequiredDate, &r.Notes,
		}
	},
}

func NewRequisitionRepository(db Database) Repository[models.Requisition] {
	return NewRepository(db, RequisitionKind)
}
