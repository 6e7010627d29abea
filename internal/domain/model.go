package domain

import "time"

// Status is the fulfillment stage of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusServed    Status = "served"
)

// Statuses lists the fulfillment stages in kitchen order.
var Statuses = []Status{StatusPending, StatusPreparing, StatusReady, StatusServed}

func (s Status) Valid() bool {
	return s.Index() >= 0
}

// Index returns the position of s in the stage sequence, or -1.
func (s Status) Index() int {
	for i, st := range Statuses {
		if s == st {
			return i
		}
	}
	return -1
}

// LineItem is one entry within an order: the item name, quantity and
// unit price captured at order time.
type LineItem struct {
	Name  string  `json:"item"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

// Order is a table-scoped request for one or more menu items. Line
// items and the stored total never change after creation; only Status
// is mutated.
type Order struct {
	ID           string     `json:"id"`
	TableID      string     `json:"table_id"`
	Items        []LineItem `json:"order"`
	Instructions string     `json:"special_instructions"`
	Status       Status     `json:"status"`
	CreatedAt    time.Time  `json:"timestamp"`
	Total        float64    `json:"total"`
}

// MenuItem is a static catalog entry.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}
