package repositories

import (
	"mainthub/internal/models"

	"github.com/google/uuid"
)

var ServiceScheduleKind = &Kind[models.ServiceSchedule]{
	Name:  "service_schedule",
	Table: "service_schedules",
	Columns: []Column{
		{Name: "asset_id", Type: UUIDColumn},
		{Name: "name", Type: TextColumn},
		{Name: "description", Type: TextColumn},
		{Name: "frequency", Type: TextColumn},
		{Name: "last_service_date", Type: DateColumn},
		{Name: "next_service_date", Type: DateColumn},
		{Name: "service_instructions", Type: TextColumn},
		{Name: "assigned_to", Type: UUIDColumn},
		{Name: "team_id", Type: UUIDColumn},
	},
	Required:      []string{"name", "frequency"},
	SearchColumns: []string{"name", "description"},
	OrderBy:       "name",
	Relations: []Relation[models.ServiceSchedule]{
		Embed("asset", "assets", "asset_id",
			func(s *models.ServiceSchedule) *uuid.UUID { return s.AssetID },
			func(s *models.ServiceSchedule, a *models.Asset) { s.Asset = a }),
		Embed("assigned_provider", "service_provider", "assigned_to",
			func(s *models.ServiceSchedule) *uuid.UUID { return s.AssignedTo },
			func(s *models.ServiceSchedule, p *models.ServiceProvider) { s.AssignedProvider = p }),
	},
	Targets: func(s *models.ServiceSchedule) []any {
		return []any{
			&s.ID, &s.CreatedAt, &s.UpdatedAt,
			&s.AssetID, &s.Name, &s.Description, &s.Frequency, &s.LastServiceDate,
			&s.NextServiceDate, &s.ServiceInstructions, &s.AssignedTo, &s.TeamID,
		}
	},
}

func NewServiceScheduleRepository(db Database) Repository[models.ServiceSchedule] {
	return NewRepository(db, ServiceScheduleKind)
}
