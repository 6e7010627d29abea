package domain

type CreateOrderRequest struct {
	TableID      string     `json:"table_id"`
	Items        []LineItem `json:"order"`
	Instructions string     `json:"special_instructions,omitempty"`
}

type CreateOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"order_id"`
	Message string `json:"message"`
}

type ListOrdersResponse struct {
	Orders []Order `json:"orders"`
	Count  int     `json:"count"`
}

type UpdateStatusRequest struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

type UpdateStatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Order   Order  `json:"order"`
}

type MenuResponse struct {
	TableID string     `json:"table_id"`
	Items   []MenuItem `json:"items"`
	Count   int        `json:"count"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
