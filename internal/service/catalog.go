package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"orderdesk/internal/models"
	"orderdesk/internal/store"
	"orderdesk/internal/util"
)

// CatalogStore is the persistence surface the product catalog needs.
type CatalogStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) error
	UpdateProduct(ctx context.Context, id int64, upd store.ProductUpdate) error
	DeleteProduct(ctx context.Context, id int64) error
	DeductStock(ctx context.Context, items []string) error
}

// Catalog handles product catalog business logic
type Catalog struct {
	store  CatalogStore
	logger *zap.Logger
}

// NewCatalog creates a new product catalog service
func NewCatalog(s CatalogStore) *Catalog {
	return &Catalog{store: s, logger: util.GetLogger()}
}

// List returns all products ordered by id ascending.
func (c *Catalog) List(ctx context.Context) ([]models.Product, error) {
	return c.store.ListProducts(ctx)
}

// Get returns one product by id.
func (c *Catalog) Get(ctx context.Context, id int64) (*models.Product, error) {
	return c.store.GetProductByID(ctx, id)
}

// Create inserts a new product. The name is title-cased before storage;
// duplicate names are not guarded against.
func (c *Catalog) Create(ctx context.Context, name string, price decimal.Decimal, stock int) (*models.Product, error) {
	p := &models.Product{Name: titleCase(name), Price: price, Stock: stock}
	if err := c.store.CreateProduct(ctx, p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	c.logger.Info("product created", zap.Int64("id", p.ID), zap.String("name", p.Name))
	return p, nil
}

// Update applies only the provided fields to one product.
func (c *Catalog) Update(ctx context.Context, id int64, upd store.ProductUpdate) error {
	if upd.Name != nil {
		name := titleCase(*upd.Name)
		upd.Name = &name
	}
	if err := c.store.UpdateProduct(ctx, id, upd); err != nil {
		return err
	}
	c.logger.Info("product updated", zap.Int64("id", id))
	return nil
}

// Delete removes one product by id.
func (c *Catalog) Delete(ctx context.Context, id int64) error {
	if err := c.store.DeleteProduct(ctx, id); err != nil {
		return err
	}
	c.logger.Info("product deleted", zap.Int64("id", id))
	return nil
}

// DeductStock decrements stock by one per item occurrence. Unknown names
// no-op; there is no bounds check.
func (c *Catalog) DeductStock(ctx context.Context, items []string) error {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = titleCase(item)
	}
	return c.store.DeductStock(ctx, names)
}
