package usecase

import (
	"context"
	"fmt"
	"math"
	"net/mail"
	"strings"

	"ticket-monarch/internal/domain/booking"
	"ticket-monarch/internal/infra/backend"
	"ticket-monarch/internal/pkg/errs"
	"ticket-monarch/internal/pkg/password"
)

// Upper bounds keep price * quantity well inside int64 cents.
const (
	maxOrderPrice    = 1_000_000
	maxOrderQuantity = 10_000
)

type OrdersBackend interface {
	ListOrders(ctx context.Context) backend.OrdersResult
	CreateOrder(ctx context.Context, o backend.NewOrder) backend.CreateOrderResult
	ImportOrders(ctx context.Context) backend.ImportResult
	ExportCheckouts(ctx context.Context) backend.ExportResult
	HealthCheck(ctx context.Context) backend.HealthResult
}

type OrderInput struct {
	CustomerName string
	Email        string
	ProductName  string
	Quantity     int
	Price        float64
}

type OrdersUseCase interface {
	Authorize(adminKey string) error
	ListOrders(ctx context.Context) backend.OrdersResult
	CreateOrder(ctx context.Context, in OrderInput) (backend.CreateOrderResult, error)
	ImportOrders(ctx context.Context) backend.ImportResult
	Export(ctx context.Context) backend.ExportResult
	Health(ctx context.Context) backend.HealthResult
}

type ordersUseCaseImpl struct {
	backend      OrdersBackend
	adminKeyHash string
}

func NewOrdersUseCase(b OrdersBackend, adminKeyHash string) OrdersUseCase {
	return &ordersUseCaseImpl{backend: b, adminKeyHash: adminKeyHash}
}

// Authorize checks the admin key against the configured bcrypt hash. With no
// hash configured every key is refused.
func (o *ordersUseCaseImpl) Authorize(adminKey string) error {
	if o.adminKeyHash == "" {
		return errs.ErrAdminUnauthorized
	}
	if err := password.Compare(o.adminKeyHash, adminKey); err != nil {
		return errs.Mark(errs.Wrap(err, "admin key check"), errs.ErrAdminUnauthorized)
	}
	return nil
}

func (o *ordersUseCaseImpl) ListOrders(ctx context.Context) backend.OrdersResult {
	return o.backend.ListOrders(ctx)
}

func (o *ordersUseCaseImpl) CreateOrder(ctx context.Context, in OrderInput) (backend.CreateOrderResult, error) {
	order, err := buildOrder(in)
	if err != nil {
		return backend.CreateOrderResult{}, err
	}
	return o.backend.CreateOrder(ctx, order), nil
}

func (o *ordersUseCaseImpl) ImportOrders(ctx context.Context) backend.ImportResult {
	return o.backend.ImportOrders(ctx)
}

func (o *ordersUseCaseImpl) Export(ctx context.Context) backend.ExportResult {
	return o.backend.ExportCheckouts(ctx)
}

func (o *ordersUseCaseImpl) Health(ctx context.Context) backend.HealthResult {
	return o.backend.HealthCheck(ctx)
}

// buildOrder validates the admin input and prices it in whole cents so the
// total is exactly price times quantity.
func buildOrder(in OrderInput) (backend.NewOrder, error) {
	name := strings.TrimSpace(in.CustomerName)
	email := strings.TrimSpace(in.Email)
	product := strings.TrimSpace(in.ProductName)

	switch {
	case name == "":
		return backend.NewOrder{}, invalidOrder("customer name is required")
	case email == "":
		return backend.NewOrder{}, invalidOrder("email is required")
	case product == "":
		return backend.NewOrder{}, invalidOrder("product name is required")
	case in.Quantity < 1:
		return backend.NewOrder{}, invalidOrder("quantity must be at least 1")
	case in.Quantity > maxOrderQuantity:
		return backend.NewOrder{}, invalidOrder(fmt.Sprintf("quantity must be at most %d", maxOrderQuantity))
	case in.Price < 0 || math.IsNaN(in.Price) || math.IsInf(in.Price, 0):
		return backend.NewOrder{}, invalidOrder("price must be zero or more")
	case in.Price > maxOrderPrice:
		return backend.NewOrder{}, invalidOrder(fmt.Sprintf("price must be at most %d", maxOrderPrice))
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return backend.NewOrder{}, invalidOrder("email is invalid")
	}

	price, err := booking.NewMoney(int64(math.Round(in.Price * 100)))
	if err != nil {
		return backend.NewOrder{}, invalidOrder(err.Error())
	}

	return backend.NewOrder{
		CustomerName: name,
		Email:        email,
		ProductName:  product,
		Quantity:     in.Quantity,
		Price:        price.Dollars(),
		Total:        price.Times(in.Quantity).Dollars(),
	}, nil
}

func invalidOrder(reason string) error {
	return errs.Mark(errs.New(fmt.Sprintf("invalid order: %s", reason)), errs.ErrInvalidOrder)
}
