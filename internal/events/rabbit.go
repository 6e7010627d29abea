package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"table-order/internal/domain"
)

const (
	exchange         = "orders_topic"
	keyOrderCreated  = "order.created"
	keyStatusChanged = "order.status_changed"
)

// Rabbit publishes order events to a durable topic exchange. Messages
// are persistent JSON; a single serialized channel keeps per-process
// publish order, and the broker delivers at least once.
type Rabbit struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	mu   sync.Mutex
}

func DialRabbit(url string) (*Rabbit, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &Rabbit{conn: conn, ch: ch}, nil
}

func (r *Rabbit) OrderCreated(ctx context.Context, o domain.Order) error {
	return r.publish(ctx, keyOrderCreated, domain.OrderCreatedEvent{
		OrderID:   o.ID,
		TableID:   o.TableID,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
	})
}

func (r *Rabbit) StatusChanged(ctx context.Context, o domain.Order) error {
	return r.publish(ctx, keyStatusChanged, domain.StatusChangedEvent{
		OrderID:   o.ID,
		TableID:   o.TableID,
		Status:    o.Status,
		ChangedAt: time.Now().UTC(),
	})
}

func (r *Rabbit) publish(ctx context.Context, key string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ch.PublishWithContext(ctx, exchange, key, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
}

func (r *Rabbit) Close() {
	if r.ch != nil {
		_ = r.ch.Close()
	}
	if r.conn != nil {
		_ = r.conn.Close()
	}
}
