package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/models"
	"orderdesk/internal/store"
)

// seedOrders assigns n orders to the given courier, bypassing the workflow.
func seedOrders(ms *memStore, courierID int64, n int) {
	for i := 0; i < n; i++ {
		ms.orders = append(ms.orders, models.Order{
			ID:        ms.id(),
			Items:     "Widget",
			Status:    models.OrderStatusPreparing,
			CourierID: courierID,
		})
	}
}

func TestLeastLoadedPicksLowestWorkload(t *testing.T) {
	ms := newMemStore()
	roster := NewRoster(ms)

	ctx := context.Background()
	var ids []int64
	for _, name := range []string{"alpha", "bravo", "charlie", "delta"} {
		c, err := roster.Create(ctx, name)
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}

	// workloads [3,1,1,0]
	seedOrders(ms, ids[0], 3)
	seedOrders(ms, ids[1], 1)
	seedOrders(ms, ids[2], 1)

	got, err := roster.LeastLoaded(ctx)
	require.NoError(t, err)
	assert.Equal(t, ids[3], got.ID)
}

func TestLeastLoadedTieBreaksByRosterOrder(t *testing.T) {
	ms := newMemStore()
	roster := NewRoster(ms)

	ctx := context.Background()
	first, err := roster.Create(ctx, "alpha")
	require.NoError(t, err)
	second, err := roster.Create(ctx, "bravo")
	require.NoError(t, err)

	seedOrders(ms, first.ID, 1)
	seedOrders(ms, second.ID, 1)

	got, err := roster.LeastLoaded(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestLeastLoadedEmptyRoster(t *testing.T) {
	ms := newMemStore()
	roster := NewRoster(ms)

	_, err := roster.LeastLoaded(context.Background())
	assert.ErrorIs(t, err, ErrEmptyRoster)
}

func TestOrdersForResolvesCourier(t *testing.T) {
	ms := newMemStore()
	roster := NewRoster(ms)

	ctx := context.Background()
	c, err := roster.Create(ctx, "alpha")
	require.NoError(t, err)
	seedOrders(ms, c.ID, 2)

	courier, orders, err := roster.OrdersFor(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", courier.Name)
	assert.Len(t, orders, 2)
}

func TestOrdersForMissingCourierNotFound(t *testing.T) {
	ms := newMemStore()
	roster := NewRoster(ms)

	_, _, err := roster.OrdersFor(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
