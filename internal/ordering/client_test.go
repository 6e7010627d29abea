package ordering

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"table-order/internal/domain"
)

func TestClient_Submit(t *testing.T) {
	var got domain.CreateOrderRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/order" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.CreateOrderResponse{
			Success: true, OrderID: "order_123_abc", Message: "Order placed successfully",
		})
	}))
	defer srv.Close()

	cart := NewCart()
	cart.Add(wings, 2)
	id, err := NewClient(srv.URL).Submit(context.Background(), "Table 5", cart, "extra spicy")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if id != "order_123_abc" {
		t.Errorf("order id = %q", id)
	}
	if got.TableID != "Table 5" || got.Instructions != "extra spicy" || len(got.Items) != 1 {
		t.Errorf("unexpected request payload: %+v", got)
	}
}

func TestClient_SubmitEmptyCart(t *testing.T) {
	_, err := NewClient("http://localhost:0").Submit(context.Background(), "Table 1", NewCart(), "")
	if err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestClient_SubmitSurfacesServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(domain.ErrorResponse{Error: "Invalid order item format"})
	}))
	defer srv.Close()

	cart := NewCart()
	cart.Add(wings, 1)
	_, err := NewClient(srv.URL).Submit(context.Background(), "Table 1", cart, "")
	if err == nil || err.Error() != "Invalid order item format" {
		t.Fatalf("expected service error message, got %v", err)
	}
}
