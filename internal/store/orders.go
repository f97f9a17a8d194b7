package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"orderdesk/internal/models"
)

// ListOrders retrieves all orders ordered by id
func (s *Store) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.SelectContext(ctx, &orders, "SELECT * FROM orders ORDER BY id ASC")
	return orders, err
}

// ListOrdersByStatus retrieves all orders with an exact status match
func (s *Store) ListOrdersByStatus(ctx context.Context, status string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.SelectContext(ctx, &orders,
		"SELECT * FROM orders WHERE status = $1 ORDER BY id ASC", status)
	return orders, err
}

// GetOrderByID retrieves an order by ID
func (s *Store) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	err := s.db.GetContext(ctx, &order, "SELECT * FROM orders WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus sets the status of one order. Returns ErrNotFound when
// the id matches no row.
func (s *Store) UpdateOrderStatus(ctx context.Context, id int64, status string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE orders SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	return nil
}

// PlaceOrderTx persists the order and its side effects in one transaction:
// insert the order row, deduct one unit of stock per item, and add the
// summed item prices to the customer's spend total. A failure at any step
// rolls back the whole sequence.
func (s *Store) PlaceOrderTx(ctx context.Context, order *models.Order, customerID int64, items []string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.GetContext(ctx, &order.ID, `
		INSERT INTO orders (reference, customer_name, customer_address, customer_phone, customer_email, items, status, courier_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		order.Reference, order.CustomerName, order.CustomerAddress, order.CustomerPhone,
		order.CustomerEmail, order.Items, order.Status, order.CourierID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	if err := deductStock(ctx, tx, items); err != nil {
		return err
	}

	total, err := sumItemPrices(ctx, tx, items)
	if err != nil {
		return err
	}
	if err := accrueSpend(ctx, tx, customerID, total); err != nil {
		return err
	}

	return tx.Commit()
}
