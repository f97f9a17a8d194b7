package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/store"
)

func TestCreateTitleCasesName(t *testing.T) {
	ms := newMemStore()
	catalog := NewCatalog(ms)

	p, err := catalog.Create(context.Background(), "cheese toastie", decimal.NewFromFloat(4.50), 10)
	require.NoError(t, err)

	assert.Equal(t, "Cheese Toastie", p.Name)
	assert.NotZero(t, p.ID)
}

func TestDeductStockDecrementsByOne(t *testing.T) {
	ms := newMemStore()
	catalog := NewCatalog(ms)

	ctx := context.Background()
	_, err := catalog.Create(ctx, "widget", decimal.NewFromFloat(2.50), 5)
	require.NoError(t, err)

	err = catalog.DeductStock(ctx, []string{"widget"})
	require.NoError(t, err)

	assert.Equal(t, 4, ms.products[0].Stock)
}

func TestDeductStockUnknownNameNoOp(t *testing.T) {
	ms := newMemStore()
	catalog := NewCatalog(ms)

	ctx := context.Background()
	_, err := catalog.Create(ctx, "widget", decimal.NewFromFloat(2.50), 5)
	require.NoError(t, err)

	err = catalog.DeductStock(ctx, []string{"gizmo"})
	require.NoError(t, err)

	assert.Equal(t, 5, ms.products[0].Stock)
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	ms := newMemStore()
	catalog := NewCatalog(ms)

	ctx := context.Background()
	p, err := catalog.Create(ctx, "widget", decimal.NewFromFloat(2.50), 5)
	require.NoError(t, err)

	newPrice := decimal.NewFromFloat(3.75)
	err = catalog.Update(ctx, p.ID, store.ProductUpdate{Price: &newPrice})
	require.NoError(t, err)

	got := ms.products[0]
	assert.Equal(t, "Widget", got.Name)
	assert.True(t, got.Price.Equal(newPrice))
	assert.Equal(t, 5, got.Stock)
}

func TestUpdateMissingProductNotFound(t *testing.T) {
	ms := newMemStore()
	catalog := NewCatalog(ms)

	name := "gadget"
	err := catalog.Update(context.Background(), 42, store.ProductUpdate{Name: &name})
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Empty(t, ms.products)
}

func TestDeleteMissingProductNotFound(t *testing.T) {
	ms := newMemStore()
	catalog := NewCatalog(ms)

	err := catalog.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
