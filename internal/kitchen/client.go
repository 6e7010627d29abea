// Package kitchen is the staff-facing consumer of the order service:
// it polls the list endpoint, tracks a local copy of the orders and
// advances their status.
package kitchen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"table-order/internal/domain"
)

// DefaultPollInterval is how often the dashboard refreshes when no
// interval is configured.
const DefaultPollInterval = 10 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/order", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp, "Failed to fetch orders")
	}
	var out domain.ListOrdersResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

func (c *Client) UpdateStatus(ctx context.Context, orderID string, status domain.Status) (domain.Order, error) {
	body, err := json.Marshal(domain.UpdateStatusRequest{OrderID: orderID, Status: string(status)})
	if err != nil {
		return domain.Order{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.baseURL+"/order", bytes.NewReader(body))
	if err != nil {
		return domain.Order{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Order{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return domain.Order{}, responseError(resp, "Failed to update order status")
	}
	var out domain.UpdateStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.Order{}, err
	}
	return out.Order, nil
}

func responseError(resp *http.Response, fallback string) error {
	var e domain.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Error != "" {
		return errors.New(e.Error)
	}
	return fmt.Errorf("%s (status %d)", fallback, resp.StatusCode)
}

// Dashboard holds the kitchen's local view of the orders. Refresh and
// Advance keep it in sync with the service; on any failure the prior
// state is preserved and the error message retained for display.
type Dashboard struct {
	client *Client

	mu      sync.Mutex
	orders  []domain.Order
	lastErr string
}

func NewDashboard(client *Client) *Dashboard {
	return &Dashboard{client: client}
}

// Refresh replaces the local order list with the service's. On failure
// the previous list stays displayed and the error is recorded.
func (d *Dashboard) Refresh(ctx context.Context) error {
	orders, err := d.client.FetchOrders(ctx)
	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.lastErr = err.Error()
		return err
	}
	d.orders = orders
	d.lastErr = ""
	return nil
}

// Advance asks the service to move one order to the given status and,
// on acknowledgment, updates the local copy with the returned record.
// On failure the local copy keeps its prior status.
func (d *Dashboard) Advance(ctx context.Context, orderID string, status domain.Status) error {
	updated, err := d.client.UpdateStatus(ctx, orderID, status)
	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.lastErr = err.Error()
		return err
	}
	for i := range d.orders {
		if d.orders[i].ID == updated.ID {
			d.orders[i] = updated
			break
		}
	}
	d.lastErr = ""
	return nil
}

func (d *Dashboard) Orders() []domain.Order {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]domain.Order, len(d.orders))
	copy(out, d.orders)
	return out
}

// LastError is the message from the most recent failed call, or empty.
func (d *Dashboard) LastError() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastErr
}

// Watch refreshes immediately and then on every tick until the context
// is cancelled, invoking onUpdate with a snapshot after each attempt.
// The ticker is stopped on return so an inactive view leaks no timer.
func (d *Dashboard) Watch(ctx context.Context, interval time.Duration, onUpdate func(orders []domain.Order, errMsg string)) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	_ = d.Refresh(ctx)
	onUpdate(d.Orders(), d.LastError())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = d.Refresh(ctx)
			onUpdate(d.Orders(), d.LastError())
		}
	}
}
