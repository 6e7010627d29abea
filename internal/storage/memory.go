package storage

import (
	"context"
	"sort"
	"sync"

	"table-order/internal/domain"
)

// MemoryStore keeps orders in a process-lifetime slice. A single mutex
// serializes create, list and update so concurrent requests never
// interleave mid-operation. Orders are lost on restart.
type MemoryStore struct {
	mu     sync.Mutex
	orders []domain.Order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Create(_ context.Context, o domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o.Items = append([]domain.LineItem(nil), o.Items...)
	s.orders = append(s.orders, o)
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	// Newest first; insertion order breaks timestamp ties.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) UpdateStatus(_ context.Context, orderID string, status domain.Status) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			return s.orders[i], nil
		}
	}
	return domain.Order{}, ErrOrderNotFound
}
