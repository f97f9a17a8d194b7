package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"orderdesk/internal/models"
	"orderdesk/internal/util"
)

// OrderStore is the persistence surface the order workflow needs.
type OrderStore interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListOrdersByStatus(ctx context.Context, status string) ([]models.Order, error)
	GetOrderByID(ctx context.Context, id int64) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) error
	PlaceOrderTx(ctx context.Context, order *models.Order, customerID int64, items []string) error
}

// CourierPicker selects the courier an order is assigned to.
type CourierPicker interface {
	LeastLoaded(ctx context.Context) (*models.Courier, error)
}

// CustomerResolver resolves an order's customer to a directory id.
type CustomerResolver interface {
	FindOrCreate(ctx context.Context, name, phone, email string) (int64, error)
}

// Orders handles order workflow business logic
type Orders struct {
	store     OrderStore
	roster    CourierPicker
	directory CustomerResolver
	logger    *zap.Logger
}

// NewOrders creates a new order workflow service
func NewOrders(s OrderStore, roster CourierPicker, directory CustomerResolver) *Orders {
	return &Orders{store: s, roster: roster, directory: directory, logger: util.GetLogger()}
}

// CreateOrderRequest represents a request to create an order
type CreateOrderRequest struct {
	CustomerName    string
	CustomerAddress string
	CustomerPhone   string
	CustomerEmail   string
	Items           []string
}

// allowedTransitions encodes the order lifecycle: preparing fans out to the
// other three labels, ready can only move to collected, and collected and
// abandoned are terminal.
var allowedTransitions = map[string]map[string]bool{
	models.OrderStatusPreparing: {
		models.OrderStatusReady:     true,
		models.OrderStatusCollected: true,
		models.OrderStatusAbandoned: true,
	},
	models.OrderStatusReady: {
		models.OrderStatusCollected: true,
	},
}

// Create places a new order. Preconditions (at least one item, at least one
// courier) are checked before any write; the order row, stock deduction and
// spend accrual then commit as one transaction.
func (o *Orders) Create(ctx context.Context, req *CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}

	courier, err := o.roster.LeastLoaded(ctx)
	if err != nil {
		return nil, err
	}

	customerID, err := o.directory.FindOrCreate(ctx, req.CustomerName, req.CustomerPhone, req.CustomerEmail)
	if err != nil {
		return nil, fmt.Errorf("resolve customer: %w", err)
	}

	items := make([]string, len(req.Items))
	for i, item := range req.Items {
		items[i] = titleCase(item)
	}

	order := &models.Order{
		Reference:       uuid.New().String(),
		CustomerName:    titleCase(req.CustomerName),
		CustomerAddress: strings.ToLower(req.CustomerAddress),
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		Items:           models.JoinItems(items),
		Status:          models.OrderStatusPreparing,
		CourierID:       courier.ID,
	}

	if err := o.store.PlaceOrderTx(ctx, order, customerID, items); err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	o.logger.Info("order created",
		zap.Int64("id", order.ID),
		zap.String("reference", order.Reference),
		zap.Int64("courier_id", courier.ID),
		zap.Int("items", len(items)))
	return order, nil
}

// UpdateStatus moves an order to a new lifecycle label, enforcing the
// allowed transition set.
func (o *Orders) UpdateStatus(ctx context.Context, id int64, status string) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	order, err := o.store.GetOrderByID(ctx, id)
	if err != nil {
		return err
	}
	if !allowedTransitions[order.Status][status] {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	if err := o.store.UpdateOrderStatus(ctx, id, status); err != nil {
		return err
	}
	o.logger.Info("order status updated", zap.Int64("id", id), zap.String("status", status))
	return nil
}

// List returns all orders ordered by id ascending.
func (o *Orders) List(ctx context.Context) ([]models.Order, error) {
	return o.store.ListOrders(ctx)
}

// ListByStatus returns all orders carrying the given lifecycle label.
func (o *Orders) ListByStatus(ctx context.Context, status string) ([]models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return o.store.ListOrdersByStatus(ctx, status)
}
