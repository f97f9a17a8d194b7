package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"orderdesk/internal/models"
)

// CustomerUpdate carries the optional fields of a partial customer update.
type CustomerUpdate struct {
	Name  *string
	Email *string
	Phone *string
}

// ListCustomers retrieves all customers ordered by id
func (s *Store) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.SelectContext(ctx, &customers, "SELECT * FROM customers ORDER BY id ASC")
	return customers, err
}

// CreateCustomer inserts a new customer and fills in the generated id
func (s *Store) CreateCustomer(ctx context.Context, c *models.Customer) error {
	return s.db.GetContext(ctx, &c.ID,
		"INSERT INTO customers (name, email, phone, total_spend) VALUES ($1, $2, $3, $4) RETURNING id",
		c.Name, c.Email, c.Phone, c.TotalSpend)
}

// UpdateCustomer applies the provided fields to one customer. Returns
// ErrNotFound when the id matches no row.
func (s *Store) UpdateCustomer(ctx context.Context, id int64, upd CustomerUpdate) error {
	sets := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)

	if upd.Name != nil {
		args = append(args, *upd.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if upd.Email != nil {
		args = append(args, *upd.Email)
		sets = append(sets, fmt.Sprintf("email = $%d", len(args)))
	}
	if upd.Phone != nil {
		args = append(args, *upd.Phone)
		sets = append(sets, fmt.Sprintf("phone = $%d", len(args)))
	}
	if len(sets) == 0 {
		return s.customerExists(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE customers SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("customer %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteCustomer removes a customer by ID
func (s *Store) DeleteCustomer(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("customer %d: %w", id, ErrNotFound)
	}
	return nil
}

// FindCustomerIDByEmail returns the id of the first customer (by id order)
// with the given email, or ErrNotFound.
func (s *Store) FindCustomerIDByEmail(ctx context.Context, email string) (int64, error) {
	var id int64
	err := s.db.GetContext(ctx, &id,
		"SELECT id FROM customers WHERE email = $1 ORDER BY id ASC LIMIT 1", email)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("customer with email %s: %w", email, ErrNotFound)
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// AccrueCustomerSpend adds amount to the customer's running spend total.
func (s *Store) AccrueCustomerSpend(ctx context.Context, id int64, amount decimal.Decimal) error {
	return accrueSpend(ctx, s.db, id, amount)
}

func (s *Store) customerExists(ctx context.Context, id int64) error {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)", id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("customer %d: %w", id, ErrNotFound)
	}
	return nil
}

func accrueSpend(ctx context.Context, ext sqlx.ExtContext, id int64, amount decimal.Decimal) error {
	_, err := ext.ExecContext(ctx,
		"UPDATE customers SET total_spend = total_spend + $1 WHERE id = $2", amount, id)
	if err != nil {
		return fmt.Errorf("accrue spend for customer %d: %w", id, err)
	}
	return nil
}
