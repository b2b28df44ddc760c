package ws

import (
	"testing"
	"time"

	"github.com/abu0717/canteen/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDispatcherOrderCreatedBroadcastsToCafeScope(t *testing.T) {
	r := NewRegistry()
	d := NewDispatcher(r)

	staff, staffConn := newFakeClient(false)
	r.Register(CafeScope(3), 20, staff)
	customer, customerConn := newFakeClient(false)
	r.Register(UserScope(10), 10, customer)

	order := &entity.Order{
		Model:      gorm.Model{ID: 42, CreatedAt: time.Now()},
		AccountID:  10,
		CafeID:     3,
		Note:       "no onions",
		Status:     entity.StatusPending,
		TotalPrice: 11.5,
	}
	d.OrderCreated(order, "Alice", 2)

	require.Equal(t, 1, staffConn.sentCount())
	payload, ok := staffConn.sent[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, EventNewOrder, payload["type"])
	assert.Equal(t, uint(42), payload["order_id"])
	assert.Equal(t, "Alice", payload["customer_name"])
	assert.Equal(t, 11.5, payload["total_price"])
	assert.Equal(t, entity.StatusPending, payload["status"])
	assert.Equal(t, 2, payload["items_count"])
	assert.Equal(t, "no onions", payload["note"])

	assert.Equal(t, 0, customerConn.sentCount(), "creation is not sent to the customer directly")
}

func TestDispatcherOrderStatusUpdatedGoesToCustomerOnly(t *testing.T) {
	r := NewRegistry()
	d := NewDispatcher(r)

	staff, staffConn := newFakeClient(false)
	r.Register(CafeScope(3), 20, staff)
	customer, customerConn := newFakeClient(false)
	r.Register(UserScope(10), 10, customer)

	order := &entity.Order{
		Model:     gorm.Model{ID: 42},
		AccountID: 10,
		CafeID:    3,
		Status:    entity.StatusPreparing,
	}
	d.OrderStatusUpdated(order, "Bob")

	require.Equal(t, 1, customerConn.sentCount())
	payload, ok := customerConn.sent[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, EventOrderStatusUpdate, payload["type"])
	assert.Equal(t, uint(42), payload["order_id"])
	assert.Equal(t, entity.StatusPreparing, payload["status"])
	assert.Equal(t, "Bob", payload["updated_by"])

	assert.Equal(t, 0, staffConn.sentCount(), "status updates are not broadcast to the cafe")
}

func TestDispatcherWithoutSubscribersIsSilent(t *testing.T) {
	d := NewDispatcher(NewRegistry())
	order := &entity.Order{Model: gorm.Model{ID: 1}, AccountID: 10, CafeID: 3}
	d.OrderCreated(order, "Alice", 1)
	d.OrderStatusUpdated(order, "Bob")
}
