// Package storage defines the order store abstraction and its
// implementations. The service layer depends only on OrderStore, so a
// durable backing store can be substituted without touching the order
// logic.
package storage

import (
	"context"
	"errors"

	"table-order/internal/domain"
)

// ErrOrderNotFound is returned by UpdateStatus for an unknown order id.
var ErrOrderNotFound = errors.New("order not found")

type OrderStore interface {
	// Create appends one order. The order becomes visible to
	// subsequent List and UpdateStatus calls.
	Create(ctx context.Context, o domain.Order) error
	// List returns all orders sorted by creation time descending.
	List(ctx context.Context) ([]domain.Order, error)
	// UpdateStatus overwrites the status of one order and returns the
	// updated record.
	UpdateStatus(ctx context.Context, orderID string, status domain.Status) (domain.Order, error)
}
