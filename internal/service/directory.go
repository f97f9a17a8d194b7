package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"orderdesk/internal/models"
	"orderdesk/internal/store"
	"orderdesk/internal/util"
)

// DirectoryStore is the persistence surface the customer directory needs.
type DirectoryStore interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	CreateCustomer(ctx context.Context, c *models.Customer) error
	UpdateCustomer(ctx context.Context, id int64, upd store.CustomerUpdate) error
	DeleteCustomer(ctx context.Context, id int64) error
	FindCustomerIDByEmail(ctx context.Context, email string) (int64, error)
	AccrueCustomerSpend(ctx context.Context, id int64, amount decimal.Decimal) error
	SumItemPrices(ctx context.Context, items []string) (decimal.Decimal, error)
}

// Directory handles customer directory business logic
type Directory struct {
	store  DirectoryStore
	logger *zap.Logger
}

// NewDirectory creates a new customer directory service
func NewDirectory(s DirectoryStore) *Directory {
	return &Directory{store: s, logger: util.GetLogger()}
}

// List returns all customers.
func (d *Directory) List(ctx context.Context) ([]models.Customer, error) {
	return d.store.ListCustomers(ctx)
}

// Create inserts a new customer with zero spend. The name is title-cased.
func (d *Directory) Create(ctx context.Context, name, email, phone string) (*models.Customer, error) {
	c := &models.Customer{
		Name:       titleCase(name),
		Email:      email,
		Phone:      phone,
		TotalSpend: decimal.Zero,
	}
	if err := d.store.CreateCustomer(ctx, c); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	d.logger.Info("customer created", zap.Int64("id", c.ID), zap.String("email", c.Email))
	return c, nil
}

// Update applies only the provided fields to one customer.
func (d *Directory) Update(ctx context.Context, id int64, upd store.CustomerUpdate) error {
	if upd.Name != nil {
		name := titleCase(*upd.Name)
		upd.Name = &name
	}
	return d.store.UpdateCustomer(ctx, id, upd)
}

// Delete removes one customer by id.
func (d *Directory) Delete(ctx context.Context, id int64) error {
	return d.store.DeleteCustomer(ctx, id)
}

// FindOrCreate returns the id of the customer with the given email,
// inserting a new customer with zero spend when no match exists. Email is
// the lookup key; name and phone are only used for the insert.
func (d *Directory) FindOrCreate(ctx context.Context, name, phone, email string) (int64, error) {
	id, err := d.store.FindCustomerIDByEmail(ctx, email)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return 0, err
	}

	c, err := d.Create(ctx, name, email, phone)
	if err != nil {
		return 0, err
	}
	return c.ID, nil
}

// AccrueSpend adds the summed current prices of the given items to the
// customer's spend total.
func (d *Directory) AccrueSpend(ctx context.Context, id int64, items []string) error {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = titleCase(item)
	}
	total, err := d.store.SumItemPrices(ctx, names)
	if err != nil {
		return err
	}
	if err := d.store.AccrueCustomerSpend(ctx, id, total); err != nil {
		return err
	}
	d.logger.Info("spend accrued", zap.Int64("customer_id", id), zap.String("amount", total.String()))
	return nil
}
