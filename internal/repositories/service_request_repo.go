package repositories

import (
	"mainthub/internal/models"

	"github.com/google/uuid"
)

// ServiceRequestKind lists newest requests first. request_number is filled
// in by the store when omitted.
var ServiceRequestKind = &Kind[models.ServiceRequest]{
	Name:  "service_request",
	Table: "service_requests",
	Columns: []Column{
		{Name: "request_number", Type: TextColumn},
		{Name: "asset_id", Type: UUIDColumn},
		{Name: "status", Type: TextColumn},
		{Name: "priority", Type: TextColumn},
		{Name: "service_type", Type: TextColumn},
		{Name: "service_requested", Type: TextColumn},
		{Name: "service_performed", Type: TextColumn},
		{Name: "start_date", Type: DateColumn},
		{Name: "due_date", Type: DateColumn},
		{Name: "estimated_hours", Type: IntColumn},
		{Name: "estimated_minutes", Type: IntColumn},
		{Name: "actual_hours", Type: IntColumn},
		{Name: "actual_minutes", Type: IntColumn},
		{Name: "assigned_to", Type: UUIDColumn},
		{Name: "completed_by", Type: UUIDColumn},
		{Name: "team_id", Type: UUIDColumn},
	},
	Required:      []string{"service_requested", "status", "priority", "service_type"},
	SearchColumns: []string{"request_number", "service_requested", "service_performed"},
	OrderBy:       "created_at",
	Descending:    true,
	Relations: []Relation[models.ServiceRequest]{
		Embed("asset", "assets", "asset_id",
			func(r *models.ServiceRequest) *uuid.UUID { return r.AssetID },
			func(r *models.ServiceRequest, a *models.Asset) { r.Asset = a }),
		Embed("assigned_provider", "service_provider", "assigned_to",
			func(r *models.ServiceRequest) *uuid.UUID { return r.AssignedTo },
			func(r *models.ServiceRequest, p *models.ServiceProvider) { r.AssignedProvider = p }),
	},
	Targets: func(r *models.ServiceRequest) []any {
		return []any{
			&r.ID, &r.CreatedAt, &r.UpdatedAt,
			&r.RequestNumber, &r.AssetID, &r.Status, &r.Priority, &r.ServiceType,
			&r.ServiceRequested, &r.ServicePerformed, &r.StartDate, &r.DueDate,
			&r.EstimatedHours, &r.EstimatedMinutes, &r.ActualHours, &r.ActualMinutes,
			&r.AssignedTo, &r.CompletedBy, &r.TeamID,
		}
	},
}

func NewServiceRequestRepository(db Database) Repository[models.ServiceRequest] {
	return NewRepository(db, ServiceRequestKind)
}
