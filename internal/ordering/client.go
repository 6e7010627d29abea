package ordering

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"table-order/internal/domain"
)

// ErrEmptyCart is returned when submitting a cart with no items.
var ErrEmptyCart = errors.New("Please add items to your order")

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

// Submit places the cart as an order for the given table and returns
// the assigned order id.
func (c *Client) Submit(ctx context.Context, tableID string, cart *Cart, instructions string) (string, error) {
	if cart.Empty() {
		return "", ErrEmptyCart
	}
	body, err := json.Marshal(domain.CreateOrderRequest{
		TableID:      tableID,
		Items:        cart.Items(),
		Instructions: instructions,
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/order", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", apiError(resp, "Failed to place order")
	}
	var out domain.CreateOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.OrderID, nil
}

// apiError extracts the service's error message from a non-success
// response body, falling back to a generic one.
func apiError(resp *http.Response, fallback string) error {
	var e domain.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Error != "" {
		return errors.New(e.Error)
	}
	return fmt.Errorf("%s (status %d)", fallback, resp.StatusCode)
}
