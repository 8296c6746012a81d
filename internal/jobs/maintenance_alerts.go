package jobs

import (
	"context"
	"time"

	"mainthub/internal/logging"
	"mainthub/internal/models"

	"github.com/google/uuid"
)

type ScheduleLister interface {
	GetAll(ctx context.Context) ([]*models.ServiceSchedule, error)
}

type MaintenanceAlertService struct {
	scheduleRepo ScheduleLister
	now          func() time.Time
}

type MaintenanceAlert struct {
	ScheduleID      uuid.UUID
	ScheduleName    string
	AssetNumber     string
	NextServiceDate time.Time
	DaysOverdue     int
}

func NewMaintenanceAlertService(scheduleRepo ScheduleLister) *MaintenanceAlertService {
	return &MaintenanceAlertService{
		scheduleRepo: scheduleRepo,
		now:          time.Now,
	}
}

// CheckOverdue returns schedules whose next service date has passed.
func (m *MaintenanceAlertService) CheckOverdue(ctx context.Context) ([]MaintenanceAlert, error) {
	schedules, err := m.scheduleRepo.GetAll(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("failed to list service schedules for due check", "error", err)
		return nil, err
	}

	now := m.now()
	var alerts []MaintenanceAlert
	for _, schedule := range schedules {
		if !schedule.Overdue(now) {
			continue
		}
		alert := MaintenanceAlert{
			ScheduleID:      schedule.ID,
			ScheduleName:    schedule.Name,
			NextServiceDate: *schedule.NextServiceDate,
			DaysOverdue:     int(now.Sub(*schedule.NextServiceDate).Hours() / 24),
		}
		if schedule.Asset != nil {
			alert.AssetNumber = schedule.Asset.AssetNumber
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}

// ScheduledDueCheck is the scheduler entry point.
func (m *MaintenanceAlertService) ScheduledDueCheck(ctx context.Context) error {
	alerts, err := m.CheckOverdue(ctx)
	if err != nil {
		return err
	}

	logger := logging.FromContext(ctx)
	for _, alert := range alerts {
		logger.Warn("maintenance overdue",
			"schedule", alert.ScheduleName,
			"asset_number", alert.AssetNumber,
			"next_service_date", alert.NextServiceDate.Format("2006-01-02"),
			"days_overdue", alert.DaysOverdue)
	}
	logger.Info("due maintenance check completed", "overdue", len(alerts))
	return nil
}
