package ws

import (
	"github.com/abu0717/canteen/entity"
)

// Event types pushed to clients.
const (
	EventNewOrder          = "new_order"
	EventOrderStatusUpdate = "order_status_update"
	EventConnectionAck     = "connection_ack"
	EventEcho              = "echo"
)

// Dispatcher turns committed order mutations into events. It is called
// only after the transaction has returned; delivery problems stay
// inside the registry and never reach the order path.
type Dispatcher struct {
	registry *Registry
}

func NewDispatcher(r *Registry) *Dispatcher {
	return &Dispatcher{registry: r}
}

// OrderCreated fans out to the staff of the order's cafe.
func (d *Dispatcher) OrderCreated(o *entity.Order, customerName string, itemsCount int) {
	d.registry.BroadcastToScope(CafeScope(o.CafeID), map[string]any{
		"type":          EventNewOrder,
		"order_id":      o.ID,
		"customer_name": customerName,
		"total_price":   o.TotalPrice,
		"status":        o.Status,
		"items_count":   itemsCount,
		"note":          o.Note,
		"created_at":    o.CreatedAt,
	})
}

// OrderStatusUpdated goes straight to the ordering customer.
func (d *Dispatcher) OrderStatusUpdated(o *entity.Order, updatedBy string) {
	d.registry.SendToUser(o.AccountID, map[string]any{
		"type":       EventOrderStatusUpdate,
		"order_id":   o.ID,
		"status":     o.Status,
		"updated_by": updatedBy,
	})
}
