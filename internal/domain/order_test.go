package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{"PENDING", "PAID", "PROCESSING", "COMPLETED", "CANCELLED"} {
		status, ok := ParseOrderStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, OrderStatus(valid), status)
	}

	_, ok := ParseOrderStatus("SHIPPED")
	assert.False(t, ok)

	_, ok = ParseOrderStatus("paid")
	assert.False(t, ok)
}

func TestSetStatus_Timestamps(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	o := &Order{Status: OrderPending}
	o.SetStatus(OrderPaid, now)
	require.NotNil(t, o.PaidAt)
	assert.Equal(t, now, *o.PaidAt)
	assert.Equal(t, OrderPaid, o.Status)

	o.SetStatus(OrderProcessing, now)
	require.NotNil(t, o.ProcessedAt)

	o.SetStatus(OrderCompleted, now)
	require.NotNil(t, o.CompletedAt)
}

func TestSetStatus_CancelledLeavesTimestamps(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	o := &Order{Status: OrderPending}
	o.SetStatus(OrderCancelled, now)

	assert.Equal(t, OrderCancelled, o.Status)
	assert.Nil(t, o.PaidAt)
	assert.Nil(t, o.ProcessedAt)
	assert.Nil(t, o.CompletedAt)
}
