package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"table-order/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS orders (
	id                   TEXT PRIMARY KEY,
	table_id             TEXT NOT NULL,
	special_instructions TEXT NOT NULL DEFAULT '',
	status               TEXT NOT NULL,
	total                DOUBLE PRECISION NOT NULL,
	created_at           TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS order_items (
	order_id TEXT NOT NULL REFERENCES orders(id),
	position INT NOT NULL,
	name     TEXT NOT NULL,
	quantity INT NOT NULL,
	price    DOUBLE PRECISION NOT NULL,
	PRIMARY KEY (order_id, position)
);`

// PostgresStore is a pgx-backed OrderStore for deployments that want
// orders to survive a restart.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// EnsureSchema creates the orders tables if they do not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, schema)
	return err
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) Create(ctx context.Context, o domain.Order) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, table_id, special_instructions, status, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		o.ID, o.TableID, o.Instructions, string(o.Status), o.Total, o.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for i, it := range o.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, position, name, quantity, price)
			VALUES ($1, $2, $3, $4, $5)`,
			o.ID, i, it.Name, it.Qty, it.Price)
		if err != nil {
			return fmt.Errorf("insert order item %s: %w", it.Name, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, table_id, special_instructions, status, total, created_at
		FROM orders
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var (
		orders []domain.Order
		index  = map[string]int{}
	)
	for rows.Next() {
		var o domain.Order
		var status string
		if err := rows.Scan(&o.ID, &o.TableID, &o.Instructions, &status, &o.Total, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Status = domain.Status(status)
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := s.pool.Query(ctx, `
		SELECT order_id, name, quantity, price
		FROM order_items
		ORDER BY order_id, position`)
	if err != nil {
		return nil, fmt.Errorf("query order items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var orderID string
		var it domain.LineItem
		if err := itemRows.Scan(&orderID, &it.Name, &it.Qty, &it.Price); err != nil {
			return nil, err
		}
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, it)
		}
	}
	return orders, itemRows.Err()
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, orderID string, status domain.Status) (domain.Order, error) {
	var o domain.Order
	var st string
	err := s.pool.QueryRow(ctx, `
		UPDATE orders SET status = $2 WHERE id = $1
		RETURNING id, table_id, special_instructions, status, total, created_at`,
		orderID, string(status)).Scan(&o.ID, &o.TableID, &o.Instructions, &st, &o.Total, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("update status: %w", err)
	}
	o.Status = domain.Status(st)

	itemRows, err := s.pool.Query(ctx, `
		SELECT name, quantity, price FROM order_items
		WHERE order_id = $1 ORDER BY position`, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("query order items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var it domain.LineItem
		if err := itemRows.Scan(&it.Name, &it.Qty, &it.Price); err != nil {
			return domain.Order{}, err
		}
		o.Items = append(o.Items, it)
	}
	return o, itemRows.Err()
}
