package models

import (
	"time"

	"github.com/google/uuid"
)

type ServiceStatus string

const (
	ServiceOpen             ServiceStatus = "Open"
	ServiceClosed           ServiceStatus = "Closed"
	ServiceOnHold           ServiceStatus = "On Hold"
	ServiceInProgress       ServiceStatus = "In Progress"
	ServiceClosedCompleted  ServiceStatus = "Closed-Completed"
	ServiceClosedIncomplete ServiceStatus = "Closed-Incomplete"
)

type ServicePriority string

const (
	PriorityHighest ServicePriority = "Highest"
	PriorityHigh    ServicePriority = "High"
	PriorityMedium  ServicePriority = "Medium"
	PriorityLow     ServicePriority = "Low"
	PriorityLowest  ServicePriority = "Lowest"
)

type ServiceType string

const (
	ServiceCorrective   ServiceType = "Corrective"
	ServicePreventive   ServiceType = "Preventive"
	ServiceProject      ServiceType = "Project"
	ServiceUpgrade      ServiceType = "Upgrade"
	ServiceInspection   ServiceType = "Inspection"
	ServiceMeterReading ServiceType = "Meter Reading"
	ServiceSafety       ServiceType = "Safety"
	ServiceOther        ServiceType = "Other"
)

// ServiceRequest is a work order against an asset. RequestNumber is generated
// by the store on insert.
type ServiceRequest struct {
	Base
	RequestNumber    string          `json:"request_number" db:"request_number"`
	AssetID          *uuid.UUID      `json:"asset_id" db:"asset_id"`
	Status           ServiceStatus   `json:"status" db:"status"`
	Priority         ServicePriority `json:"priority" db:"priority"`
	ServiceType      ServiceType     `json:"service_type" db:"service_type"`
	ServiceRequested string          `json:"service_requested" db:"service_requested"`
	ServicePerformed *string         `json:"service_performed" db:"service_performed"`
	StartDate        *time.Time      `json:"start_date" db:"start_date"`
	DueDate          *time.Time      `json:"due_date" db:"due_date"`
	EstimatedHours   *int            `json:"estimated_hours" db:"estimated_hours"`
	EstimatedMinutes *int            `json:"estimated_minutes" db:"estimated_minutes"`
	ActualHours      *int            `json:"actual_hours" db:"actual_hours"`
	ActualMinutes    *int            `json:"actual_minutes" db:"actual_minutes"`
	AssignedTo       *uuid.UUID      `json:"assigned_to" db:"assigned_to"`
	CompletedBy      *uuid.UUID      `json:"completed_by" db:"completed_by"`
	TeamID           *uuid.UUID      `json:"team_id" db:"team_id"`

	Asset            *Asset           `json:"asset,omitempty" db:"-"`
	AssignedProvider *ServiceProvider `json:"assigned_provider,omitempty" db:"-"`
}
