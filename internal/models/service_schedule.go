package models

import (
	"time"

	"github.com/google/uuid"
)

type ScheduleFrequency string

const (
	FrequencyDaily        ScheduleFrequency = "Daily"
	FrequencyWeekly       ScheduleFrequency = "Weekly"
	FrequencyMonthly      ScheduleFrequency = "Monthly"
	FrequencyQuarterly    ScheduleFrequency = "Quarterly"
	FrequencyAnnually     ScheduleFrequency = "Annually"
	FrequencyQuinquennial ScheduleFrequency = "Quinquennial"
)

// ServiceSchedule is a recurring preventive maintenance plan for an asset.
type ServiceSchedule struct {
	Base
	AssetID             *uuid.UUID        `json:"asset_id" db:"asset_id"`
	Name                string            `json:"name" db:"name"`
	Description         *string           `json:"description" db:"description"`
	Frequency           ScheduleFrequency `json:"frequency" db:"frequency"`
	LastServiceDate     *time.Time        `json:"last_service_date" db:"last_service_date"`
	NextServiceDate     *time.Time        `json:"next_service_date" db:"next_service_date"`
	ServiceInstructions *string           `json:"service_instructions" db:"service_instructions"`
	AssignedTo          *uuid.UUID        `json:"assigned_to" db:"assigned_to"`
	TeamID              *uuid.UUID        `json:"team_id" db:"team_id"`

	Asset            *Asset           `json:"asset,omitempty" db:"-"`
	AssignedProvider *ServiceProvider `json:"assigned_provider,omitempty" db:"-"`
}

// Overdue reports whether the next service date is before now.
func (s *ServiceSchedule) Overdue(now time.Time) bool {
	return s.NextServiceDate != nil && s.NextServiceDate.Before(now)
}
