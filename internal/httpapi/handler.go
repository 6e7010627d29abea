// Package httpapi exposes the order service over HTTP/JSON.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"table-order/internal/domain"
	"table-order/internal/menu"
	"table-order/internal/service"
	"table-order/internal/storage"
)

// unknownTable is the placeholder label used when the menu entry point
// is reached without a table query parameter.
const unknownTable = "Unknown Table"

type Handler struct {
	service service.OrderServiceInterface
	log     *zap.Logger
}

func New(svc service.OrderServiceInterface, log *zap.Logger) *Handler {
	return &Handler{service: svc, log: log}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /order", h.createOrder)
	mux.HandleFunc("GET /order", h.listOrders)
	mux.HandleFunc("PATCH /order", h.updateStatus)
	mux.HandleFunc("GET /menu", h.getMenu)
	return h.recovered(mux)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	o, err := h.service.Create(r.Context(), req)
	if err != nil {
		var ve service.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusBadRequest, ve.Error())
			return
		}
		h.log.Error("create_order_failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, domain.CreateOrderResponse{
		Success: true,
		OrderID: o.ID,
		Message: "Order placed successfully",
	})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		h.log.Error("list_orders_failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, domain.ListOrdersResponse{Orders: orders, Count: len(orders)})
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	o, err := h.service.UpdateStatus(r.Context(), req.OrderID, req.Status)
	if err != nil {
		var ve service.ValidationError
		switch {
		case errors.As(err, &ve):
			writeError(w, http.StatusBadRequest, ve.Error())
		case errors.Is(err, storage.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, "Order not found")
		default:
			h.log.Error("update_status_failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	writeJSON(w, http.StatusOK, domain.UpdateStatusResponse{
		Success: true,
		Message: "Order status updated successfully",
		Order:   o,
	})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	table := strings.TrimSpace(r.URL.Query().Get("table"))
	if table == "" {
		table = unknownTable
	}
	items := menu.All()
	writeJSON(w, http.StatusOK, domain.MenuResponse{TableID: table, Items: items, Count: len(items)})
}

// recovered turns panics into a generic 500 so internal detail never
// reaches the caller.
func (h *Handler) recovered(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				h.log.Error("panic_recovered",
					zap.Any("panic", rec),
					zap.String("path", r.URL.Path),
				)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, domain.ErrorResponse{Error: msg})
}
