package response

import (
	"ticket-monarch/internal/infra/backend"
	"ticket-monarch/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

type OrderResponse struct {
	ID           int64   `json:"id"`
	CustomerName string  `json:"customer_name"`
	Email        string  `json:"email"`
	ProductName  string  `json:"product_name"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	Total        float64 `json:"total"`
	OrderDate    string  `json:"order_date,omitempty"`
}

type OrdersResponse struct {
	Success bool            `json:"success"`
	Orders  []OrderResponse `json:"orders"`
	Count   int             `json:"count"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

type CreateOrderResponse struct {
	Success bool           `json:"success"`
	Order   *OrderResponse `json:"order,omitempty"`
	Message string         `json:"message,omitempty"`
	Error   string         `json:"error,omitempty"`
}

type MessageResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
	FilePath string `json:"file_path,omitempty"`
}

type HealthResponse struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}

func FromOrdersResult(r backend.OrdersResult) (OrdersResponse, error) {
	orders := make([]OrderResponse, 0, len(r.Orders))
	if err := copier.Copy(&orders, &r.Orders); err != nil {
		return OrdersResponse{}, errs.Wrap(err, "map orders")
	}
	count := r.Count
	if count == 0 {
		count = len(orders)
	}
	return OrdersResponse{
		Success: r.Success,
		Orders:  orders,
		Count:   count,
		Error:   r.Error,
		Message: r.Message,
	}, nil
}

func FromCreateOrderResult(r backend.CreateOrderResult) (CreateOrderResponse, error) {
	res := CreateOrderResponse{Success: r.Success, Message: r.Message, Error: r.Error}
	if r.Order != nil {
		var o OrderResponse
		if err := copier.Copy(&o, r.Order); err != nil {
			return CreateOrderResponse{}, errs.Wrap(err, "map created order")
		}
		res.Order = &o
	}
	return res, nil
}

func FromImportResult(r backend.ImportResult) MessageResponse {
	return MessageResponse{Success: r.Success, Message: r.Message, Error: r.Error}
}

func FromExportResult(r backend.ExportResult) MessageResponse {
	return MessageResponse{Success: r.Success, Message: r.Message, Error: r.Error, FilePath: r.FilePath}
}

func FromHealthResult(r backend.HealthResult) HealthResponse {
	return HealthResponse{Success: r.Success, Data: r.Data, Error: r.Error}
}
