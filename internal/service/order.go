// Package service implements the order lifecycle: validation, total
// computation, identifier generation and status updates against an
// injected store.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"table-order/internal/domain"
	"table-order/internal/events"
	"table-order/internal/storage"
)

// ValidationError marks a request rejected by input validation. Its
// message is surfaced to the client verbatim.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	errMissingCreateFields = ValidationError("Missing required fields: table_id and order array")
	errInvalidItem         = ValidationError("Invalid order item format")
	errMissingUpdateFields = ValidationError("Missing required fields: order_id and status")
	errInvalidStatus       = ValidationError("Invalid status. Must be one of: pending, preparing, ready, served")
)

type OrderServiceInterface interface {
	Create(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) (domain.Order, error)
}

type OrderService struct {
	store storage.OrderStore
	pub   events.Publisher
	log   *zap.Logger

	now   func() time.Time
	newID func() string
}

func NewOrderService(store storage.OrderStore, pub events.Publisher, log *zap.Logger) *OrderService {
	return &OrderService{
		store: store,
		pub:   pub,
		log:   log,
		now:   time.Now,
		newID: NewOrderID,
	}
}

// NewOrderID combines the current time with a UUID-derived suffix, so
// ids stay unique under concurrent creation.
func NewOrderID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("order_%d_%s", time.Now().UnixMilli(), suffix)
}

func (s *OrderService) Create(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	if strings.TrimSpace(req.TableID) == "" || len(req.Items) == 0 {
		return domain.Order{}, errMissingCreateFields
	}
	var total float64
	for _, it := range req.Items {
		if strings.TrimSpace(it.Name) == "" || it.Qty <= 0 {
			return domain.Order{}, errInvalidItem
		}
		total += float64(it.Qty) * it.Price
	}

	o := domain.Order{
		ID:           s.newID(),
		TableID:      req.TableID,
		Items:        req.Items,
		Instructions: req.Instructions,
		Status:       domain.StatusPending,
		CreatedAt:    s.now().UTC(),
		Total:        total,
	}
	if err := s.store.Create(ctx, o); err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}
	if err := s.pub.OrderCreated(ctx, o); err != nil {
		s.log.Warn("order_event_publish_failed", zap.String("order_id", o.ID), zap.Error(err))
	}
	s.log.Info("order_created",
		zap.String("order_id", o.ID),
		zap.String("table_id", o.TableID),
		zap.Float64("total", o.Total),
		zap.Int("items", len(o.Items)),
	)
	return o, nil
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus overwrites the status of an existing order. Any of the
// four recognized values is accepted regardless of the current one;
// the forward-only progression is a kitchen view policy, not a service
// guarantee.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (domain.Order, error) {
	if orderID == "" || status == "" {
		return domain.Order{}, errMissingUpdateFields
	}
	st := domain.Status(status)
	if !st.Valid() {
		return domain.Order{}, errInvalidStatus
	}
	o, err := s.store.UpdateStatus(ctx, orderID, st)
	if err != nil {
		if errors.Is(err, storage.ErrOrderNotFound) {
			return domain.Order{}, err
		}
		return domain.Order{}, fmt.Errorf("update status: %w", err)
	}
	if err := s.pub.StatusChanged(ctx, o); err != nil {
		s.log.Warn("order_event_publish_failed", zap.String("order_id", o.ID), zap.Error(err))
	}
	s.log.Info("status_updated",
		zap.String("order_id", o.ID),
		zap.String("status", string(o.Status)),
	)
	return o, nil
}
