package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"orderdesk/internal/models"
)

// ListCouriers retrieves all couriers ordered by id
func (s *Store) ListCouriers(ctx context.Context) ([]models.Courier, error) {
	var couriers []models.Courier
	err := s.db.SelectContext(ctx, &couriers, "SELECT * FROM couriers ORDER BY id ASC")
	return couriers, err
}

// GetCourierByID retrieves a courier by ID
func (s *Store) GetCourierByID(ctx context.Context, id int64) (*models.Courier, error) {
	var courier models.Courier
	err := s.db.GetContext(ctx, &courier, "SELECT * FROM couriers WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("courier %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &courier, nil
}

// CreateCourier inserts a new courier and fills in the generated id
func (s *Store) CreateCourier(ctx context.Context, c *models.Courier) error {
	return s.db.GetContext(ctx, &c.ID,
		"INSERT INTO couriers (name) VALUES ($1) RETURNING id", c.Name)
}

// DeleteCourier removes a courier by ID
func (s *Store) DeleteCourier(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM couriers WHERE id = $1", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("courier %d: %w", id, ErrNotFound)
	}
	return nil
}

// OrdersByCourier retrieves all orders assigned to one courier
func (s *Store) OrdersByCourier(ctx context.Context, courierID int64) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.SelectContext(ctx, &orders,
		"SELECT * FROM orders WHERE courier_id = $1 ORDER BY id ASC", courierID)
	return orders, err
}

// CourierOrderCounts returns the number of orders referencing each courier.
// Couriers with no orders are absent from the map.
func (s *Store) CourierOrderCounts(ctx context.Context) (map[int64]int, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT courier_id, COUNT(*) FROM orders GROUP BY courier_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var courierID int64
		var count int
		if err := rows.Scan(&courierID, &count); err != nil {
			return nil, err
		}
		counts[courierID] = count
	}
	return counts, rows.Err()
}
