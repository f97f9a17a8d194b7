package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{OrderStatusPreparing, OrderStatusReady, OrderStatusCollected, OrderStatusAbandoned} {
		assert.True(t, ValidOrderStatus(s), s)
	}
	assert.False(t, ValidOrderStatus("shipped"))
	assert.False(t, ValidOrderStatus(""))
	assert.False(t, ValidOrderStatus("Preparing"))
}

func TestItemsRoundTrip(t *testing.T) {
	items := []string{"Widget", "Widget", "Gizmo"}
	assert.Equal(t, "Widget,Widget,Gizmo", JoinItems(items))
	assert.Equal(t, items, SplitItems(JoinItems(items)))
	assert.Nil(t, SplitItems(""))
}
