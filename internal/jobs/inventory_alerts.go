package jobs

import (
	"context"

	"mainthub/internal/logging"
	"mainthub/internal/models"

	"github.com/google/uuid"
)

type InventoryLister interface {
	GetAll(ctx context.Context) ([]*models.InventoryItem, error)
}

type InventoryAlertService struct {
	inventoryRepo InventoryLister
}

type InventoryAlert struct {
	ItemID          uuid.UUID
	ItemNumber      string
	ItemName        string
	Location        string
	CurrentStock    int
	MinimumQuantity int
}

func NewInventoryAlertService(inventoryRepo InventoryLister) *InventoryAlertService {
	return &InventoryAlertService{
		inventoryRepo: inventoryRepo,
	}
}

// CheckLowStock returns every item at or below its minimum quantity.
func (a *InventoryAlertService) CheckLowStock(ctx context.Context) ([]InventoryAlert, error) {
	items, err := a.inventoryRepo.GetAll(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("failed to list inventory for low stock check", "error", err)
		return nil, err
	}

	var alerts []InventoryAlert
	for _, item := range items {
		if !item.BelowMinimum() {
			continue
		}
		alert := InventoryAlert{
			ItemID:          item.ID,
			ItemNumber:      item.ItemNumber,
			ItemName:        item.Name,
			CurrentStock:    item.Quantity,
			MinimumQuantity: item.MinimumQuantity,
		}
		if item.Location != nil {
			alert.Location = item.Location.Name
		}
		alerts = append(alerts, alert)
	}

	return alerts, nil
}

func (a *InventoryAlertService) LogLowStockAlerts(ctx context.Context, alerts []InventoryAlert) {
	logger := logging.FromContext(ctx)
	if len(alerts) == 0 {
		logger.Debug("no low stock alerts")
		return
	}

	for _, alert := range alerts {
		logger.Warn("inventory item below minimum",
			"item_number", alert.ItemNumber,
			"name", alert.ItemName,
			"location", alert.Location,
			"quantity", alert.CurrentStock,
			"minimum_quantity", alert.MinimumQuantity)
	}
}

// ScheduledLowStockCheck is the scheduler entry point.
func (a *InventoryAlertService) ScheduledLowStockCheck(ctx context.Context) error {
	alerts, err := a.CheckLowStock(ctx)
	if err != nil {
		return err
	}
	a.LogLowStockAlerts(ctx, alerts)
	logging.FromContext(ctx).Info("low stock check completed", "alerts", len(alerts))
	return nil
}

