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

// ProductUpdate carries the optional fields of a partial product update.
// Nil fields are left untouched.
type ProductUpdate struct {
	Name  *string
	Price *decimal.Decimal
	Stock *int
}

// ListProducts retrieves all products ordered by id
func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.SelectContext(ctx, &products, "SELECT * FROM products ORDER BY id ASC")
	return products, err
}

// GetProductByID retrieves a product by ID
func (s *Store) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	err := s.db.GetContext(ctx, &product, "SELECT * FROM products WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct inserts a new product and fills in the generated id
func (s *Store) CreateProduct(ctx context.Context, p *models.Product) error {
	return s.db.GetContext(ctx, &p.ID,
		"INSERT INTO products (name, price, stock) VALUES ($1, $2, $3) RETURNING id",
		p.Name, p.Price, p.Stock)
}

// UpdateProduct applies the provided fields to one product. Returns
// ErrNotFound when the id matches no row.
func (s *Store) UpdateProduct(ctx context.Context, id int64, upd ProductUpdate) error {
	sets := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)

	if upd.Name != nil {
		args = append(args, *upd.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if upd.Price != nil {
		args = append(args, *upd.Price)
		sets = append(sets, fmt.Sprintf("price = $%d", len(args)))
	}
	if upd.Stock != nil {
		args = append(args, *upd.Stock)
		sets = append(sets, fmt.Sprintf("stock = $%d", len(args)))
	}
	if len(sets) == 0 {
		_, err := s.GetProductByID(ctx, id)
		return err
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE products SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return s.resyncProductSeq(ctx)
}

// DeleteProduct removes a product by ID and re-syncs the id sequence
func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return s.resyncProductSeq(ctx)
}

// resyncProductSeq pins the id sequence back to max(id) after structural
// changes so deleted ids are reused.
func (s *Store) resyncProductSeq(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		"SELECT setval('products_id_seq', COALESCE((SELECT MAX(id) FROM products), 1))")
	return err
}

// DeductStock decrements stock by one per item name occurrence. Unknown
// names silently no-op and stock is allowed to go negative.
func (s *Store) DeductStock(ctx context.Context, items []string) error {
	return deductStock(ctx, s.db, items)
}

// SumItemPrices sums the prices of all product rows matching each item
// name. Duplicate item names each contribute; unknown names add zero.
func (s *Store) SumItemPrices(ctx context.Context, items []string) (decimal.Decimal, error) {
	return sumItemPrices(ctx, s.db, items)
}

func deductStock(ctx context.Context, ext sqlx.ExtContext, items []string) error {
	for _, name := range items {
		if _, err := ext.ExecContext(ctx,
			"UPDATE products SET stock = stock - 1 WHERE name = $1", name); err != nil {
			return fmt.Errorf("deduct stock for %q: %w", name, err)
		}
	}
	return nil
}

func sumItemPrices(ctx context.Context, ext sqlx.ExtContext, items []string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, name := range items {
		var sum decimal.Decimal
		err := sqlx.GetContext(ctx, ext, &sum,
			"SELECT COALESCE(SUM(price), 0) FROM products WHERE name = $1", name)
		if err != nil {
			return decimal.Zero, fmt.Errorf("price lookup for %q: %w", name, err)
		}
		total = total.Add(sum)
	}
	return total, nil
}
