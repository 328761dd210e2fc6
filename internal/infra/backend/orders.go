package backend

import (
	"context"
	"net/http"
)

type Order struct {
	ID           int64   `json:"id"`
	CustomerName string  `json:"customer_name"`
	Email        string  `json:"email"`
	ProductName  string  `json:"product_name"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	Total        float64 `json:"total"`
	OrderDate    string  `json:"order_date,omitempty"`
}

type NewOrder struct {
	CustomerName string  `json:"customer_name"`
	Email        string  `json:"email"`
	ProductName  string  `json:"product_name"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	Total        float64 `json:"total"`
}

type OrdersResult struct {
	Success bool
	Orders  []Order
	Count   int
	Error   string
	Message string
}

type CreateOrderResult struct {
	Success bool
	Order   *Order
	Error   string
	Message string
}

type ImportResult struct {
	Success bool
	Message string
	Error   string
}

type ordersResponse struct {
	Success bool    `json:"success"`
	Orders  []Order `json:"orders"`
	Count   int     `json:"count"`
	Error   string  `json:"error"`
}

func (c *Client) ListOrders(ctx context.Context) OrdersResult {
	resp, err := c.do(ctx, http.MethodGet, "/api/orders", nil)
	if err != nil {
		c.logFailure("list orders", err)
		return ordersNetworkFailure()
	}

	var body ordersResponse
	if err := c.decode(resp, &body); err != nil {
		c.logFailure("list orders", err)
		return ordersNetworkFailure()
	}

	if resp.ok() && body.Success {
		orders := body.Orders
		if orders == nil {
			orders = []Order{}
		}
		return OrdersResult{Success: true, Orders: orders, Count: body.Count}
	}

	return OrdersResult{
		Orders: []Order{},
		Error:  orDefault(body.Error, "Failed to fetch orders"),
	}
}

type createOrderResponse struct {
	Success *bool  `json:"success"`
	Order   *Order `json:"order"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// CreateOrder posts a new order. The backend echoes the created order either
// under "order" or as the top-level object.
func (c *Client) CreateOrder(ctx context.Context, o NewOrder) CreateOrderResult {
	resp, err := c.do(ctx, http.MethodPost, "/api/orders", o)
	if err != nil {
		c.logFailure("create order", err)
		return CreateOrderResult{Error: networkErrorLabel, Message: "Unable to create order. Please check your connection."}
	}

	var body createOrderResponse
	if err := c.decode(resp, &body); err != nil {
		c.logFailure("create order", err)
		return CreateOrderResult{Error: networkErrorLabel, Message: "Unable to create order. Please check your connection."}
	}

	succeeded := resp.ok() && (body.Success == nil || *body.Success)
	if !succeeded {
		return CreateOrderResult{
			Error:   orDefault(body.Error, "Failed to create order"),
			Message: body.Message,
		}
	}

	created := body.Order
	if created == nil {
		var flat Order
		if err := c.decode(resp, &flat); err == nil {
			created = &flat
		}
	}
	return CreateOrderResult{
		Success: true,
		Order:   created,
		Message: orDefault(body.Message, "Order created"),
	}
}

type messageResponse struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) ImportOrders(ctx context.Context) ImportResult {
	resp, err := c.do(ctx, http.MethodPost, "/api/orders/import", nil)
	if err != nil {
		c.logFailure("import orders", err)
		return ImportResult{Error: networkErrorLabel, Message: "Unable to import orders. Please check your connection."}
	}

	var body messageResponse
	if err := c.decode(resp, &body); err != nil {
		c.logFailure("import orders", err)
		return ImportResult{Error: networkErrorLabel, Message: "Unable to import orders. Please check your connection."}
	}

	if resp.ok() && (body.Success == nil || *body.Success) {
		return ImportResult{Success: true, Message: orDefault(body.Message, "Orders imported")}
	}
	return ImportResult{
		Error:   orDefault(body.Error, "Failed to import orders"),
		Message: body.Message,
	}
}

func ordersNetworkFailure() OrdersResult {
	return OrdersResult{
		Orders:  []Order{},
		Error:   networkErrorLabel,
		Message: "Unable to fetch orders. Please check your connection.",
	}
}
