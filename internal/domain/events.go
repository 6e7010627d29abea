package domain

import "time"

// OrderCreatedEvent is published when an order enters the store.
type OrderCreatedEvent struct {
	OrderID   string    `json:"order_id"`
	TableID   string    `json:"table_id"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// StatusChangedEvent is published after a status update is applied.
type StatusChangedEvent struct {
	OrderID   string    `json:"order_id"`
	TableID   string    `json:"table_id"`
	Status    Status    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
}
