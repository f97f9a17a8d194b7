package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"orderdesk/internal/models"
	"orderdesk/internal/util"
)

// RosterStore is the persistence surface the courier roster needs.
type RosterStore interface {
	ListCouriers(ctx context.Context) ([]models.Courier, error)
	GetCourierByID(ctx context.Context, id int64) (*models.Courier, error)
	CreateCourier(ctx context.Context, c *models.Courier) error
	DeleteCourier(ctx context.Context, id int64) error
	OrdersByCourier(ctx context.Context, courierID int64) ([]models.Order, error)
	CourierOrderCounts(ctx context.Context) (map[int64]int, error)
}

// Roster handles courier roster business logic
type Roster struct {
	store  RosterStore
	logger *zap.Logger
}

// NewRoster creates a new courier roster service
func NewRoster(s RosterStore) *Roster {
	return &Roster{store: s, logger: util.GetLogger()}
}

// List returns all couriers.
func (r *Roster) List(ctx context.Context) ([]models.Courier, error) {
	return r.store.ListCouriers(ctx)
}

// Create inserts a new courier. The name is title-cased before storage.
func (r *Roster) Create(ctx context.Context, name string) (*models.Courier, error) {
	c := &models.Courier{Name: titleCase(name)}
	if err := r.store.CreateCourier(ctx, c); err != nil {
		return nil, fmt.Errorf("create courier: %w", err)
	}
	r.logger.Info("courier created", zap.Int64("id", c.ID), zap.String("name", c.Name))
	return c, nil
}

// Delete removes one courier by id.
func (r *Roster) Delete(ctx context.Context, id int64) error {
	return r.store.DeleteCourier(ctx, id)
}

// OrdersFor resolves a courier and returns all orders assigned to it.
func (r *Roster) OrdersFor(ctx context.Context, id int64) (*models.Courier, []models.Order, error) {
	courier, err := r.store.GetCourierByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	orders, err := r.store.OrdersByCourier(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return courier, orders, nil
}

// LeastLoaded returns the courier with the fewest assigned orders, couriers
// with none included. Ties break toward roster order. Fails with
// ErrEmptyRoster when no couriers exist.
func (r *Roster) LeastLoaded(ctx context.Context) (*models.Courier, error) {
	couriers, err := r.store.ListCouriers(ctx)
	if err != nil {
		return nil, err
	}
	if len(couriers) == 0 {
		return nil, ErrEmptyRoster
	}

	counts, err := r.store.CourierOrderCounts(ctx)
	if err != nil {
		return nil, err
	}

	best := &couriers[0]
	bestCount := counts[best.ID]
	for i := 1; i < len(couriers); i++ {
		if c := counts[couriers[i].ID]; c < bestCount {
			best = &couriers[i]
			bestCount = c
		}
	}
	return best, nil
}
