// Package events publishes order lifecycle notifications for
// interested subscribers (printers, display boards). Publishing is
// best effort: the ordering flow never fails because a notification
// could not be delivered, and clients still learn about changes by
// polling the API.
package events

import (
	"context"

	"table-order/internal/domain"
)

type Publisher interface {
	OrderCreated(ctx context.Context, o domain.Order) error
	StatusChanged(ctx context.Context, o domain.Order) error
	Close()
}

// Nop discards all events. Used when no broker is configured.
type Nop struct{}

func (Nop) OrderCreated(context.Context, domain.Order) error  { return nil }
func (Nop) StatusChanged(context.Context, domain.Order) error { return nil }
func (Nop) Close()                                            {}
