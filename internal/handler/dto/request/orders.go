package request

import "ticket-monarch/internal/usecase"

type CreateOrderRequest struct {
	CustomerName string  `json:"customer_name" binding:"required"`
	Email        string  `json:"email" binding:"required"`
	ProductName  string  `json:"product_name" binding:"required"`
	Quantity     int     `json:"quantity" binding:"required"`
	Price        float64 `json:"price"`
}

func (r CreateOrderRequest) ToInput() usecase.OrderInput {
	return usecase.OrderInput{
		CustomerName: r.CustomerName,
		Email:        r.Email,
		ProductName:  r.ProductName,
		Quantity:     r.Quantity,
		Price:        r.Price,
	}
}
