package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"table-order/internal/domain"
)

func order(id string, createdAt time.Time) domain.Order {
	return domain.Order{
		ID:        id,
		TableID:   "Table 1",
		Items:     []domain.LineItem{{Name: "Coffee", Qty: 1, Price: 4000}},
		Status:    domain.StatusPending,
		CreatedAt: createdAt,
		Total:     4000,
	}
}

func TestMemoryStore_ListNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		if err := s.Create(ctx, order(fmt.Sprintf("order_%d", i), base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	orders, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("got %d orders, want 3", len(orders))
	}
	want := []string{"order_2", "order_1", "order_0"}
	for i, id := range want {
		if orders[i].ID != id {
			t.Errorf("orders[%d].ID = %s, want %s", i, orders[i].ID, id)
		}
	}
}

func TestMemoryStore_UpdateStatus(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	if err := s.Create(ctx, order("order_1", time.Now())); err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := s.UpdateStatus(ctx, "order_1", domain.StatusReady)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != domain.StatusReady {
		t.Errorf("status = %s, want ready", updated.Status)
	}

	orders, _ := s.List(ctx)
	if orders[0].Status != domain.StatusReady {
		t.Errorf("list shows %s, want ready", orders[0].Status)
	}
}

func TestMemoryStore_UpdateStatusNotFound(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.UpdateStatus(context.Background(), "nope", domain.StatusServed)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestMemoryStore_ConcurrentCreate(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Create(ctx, order(fmt.Sprintf("order_%d", i), time.Now()))
		}(i)
	}
	wg.Wait()

	orders, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(orders) != n {
		t.Errorf("got %d orders after %d concurrent creates", len(orders), n)
	}
}
