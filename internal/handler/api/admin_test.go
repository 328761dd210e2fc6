//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"ticket-monarch/internal/handler/api"
	reqdto "ticket-monarch/internal/handler/dto/request"
	resdto "ticket-monarch/internal/handler/dto/response"
	"ticket-monarch/internal/infra/backend"
	"ticket-monarch/internal/pkg/errs"
	"ticket-monarch/internal/usecase"
	"ticket-monarch/tests/common/httptest"
	"ticket-monarch/tests/common/testutil"
	usecasemock "ticket-monarch/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockOrders *usecasemock.MockOrdersUseCase
	handler    *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	s.router = httptest.NewTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockOrders = usecasemock.NewMockOrdersUseCase(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockOrders)

	s.router.GET("/admin/orders", s.handler.ListOrders)
	s.router.POST("/admin/orders", s.handler.CreateOrder)
	s.router.POST("/admin/orders/import", s.handler.ImportOrders)
	s.router.GET("/admin/export", s.handler.Export)
	s.router.GET("/admin/backend-health", s.handler.BackendHealth)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestListOrders() {
	s.Run("success", func() {
		s.mockOrders.EXPECT().ListOrders(gomock.Any()).Return(backend.OrdersResult{
			Success: true,
			Orders:  []backend.Order{{ID: 1, CustomerName: "Ann", Quantity: 2, Price: 5, Total: 10}},
		}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/orders", nil)

		var body resdto.OrdersResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal(1, body.Count)
		s.Require().Len(body.Orders, 1)
		s.Equal("Ann", body.Orders[0].CustomerName)
		s.Equal(float64(10), body.Orders[0].Total)
	})

	s.Run("backend down is 502 with an empty list", func() {
		s.mockOrders.EXPECT().ListOrders(gomock.Any()).Return(backend.OrdersResult{
			Orders:  []backend.Order{},
			Error:   "Network error",
			Message: "Unable to fetch orders. Please check your connection.",
		}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/orders", nil)

		var body resdto.OrdersResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusBadGateway, &body)
		s.False(body.Success)
		s.NotNil(body.Orders)
		s.Equal("Network error", body.Error)
	})
}

func (s *AdminHandlerTestSuite) TestCreateOrder() {
	url := "/admin/orders"
	reqBody := reqdto.CreateOrderRequest{
		CustomerName: "Ann",
		Email:        "ann@example.com",
		ProductName:  "VIP",
		Quantity:     2,
		Price:        10,
	}

	s.Run("success: 201", func() {
		s.mockOrders.EXPECT().CreateOrder(gomock.Any(), usecase.OrderInput{
			CustomerName: "Ann",
			Email:        "ann@example.com",
			ProductName:  "VIP",
			Quantity:     2,
			Price:        10,
		}).Return(backend.CreateOrderResult{Success: true, Order: &backend.Order{ID: 5, Total: 20}, Message: "Order created"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CreateOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Require().NotNil(body.Order)
		s.Equal(int64(5), body.Order.ID)
	})

	missing := []string{"customer_name", "email", "product_name", "quantity"}
	for _, key := range missing {
		s.Run("error: missing "+key, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, testutil.Field(key, nil)))
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("error: usecase rejects input", func() {
		s.mockOrders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(backend.CreateOrderResult{}, errs.Mark(errors.New("invalid order: email is invalid"), errs.ErrInvalidOrder)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "email is invalid")
	})

	s.Run("error: backend rejects order", func() {
		s.mockOrders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(backend.CreateOrderResult{Error: "Failed to create order"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CreateOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusBadGateway, &body)
		s.Equal("Failed to create order", body.Error)
	})
}

func (s *AdminHandlerTestSuite) TestImportExportHealth() {
	s.mockOrders.EXPECT().ImportOrders(gomock.Any()).Return(backend.ImportResult{Success: true, Message: "Orders imported"}).Times(1)
	s.mockOrders.EXPECT().Export(gomock.Any()).Return(backend.ExportResult{Success: true, FilePath: "/data/checkouts.csv"}).Times(1)
	s.mockOrders.EXPECT().Health(gomock.Any()).Return(backend.HealthResult{Error: "Unable to connect to the server"}).Times(1)

	var msg resdto.MessageResponse
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/orders/import", nil)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &msg)
	s.Equal("Orders imported", msg.Message)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/export", nil)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &msg)
	s.Equal("/data/checkouts.csv", msg.FilePath)

	var health resdto.HealthResponse
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/backend-health", nil)
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusBadGateway, &health)
	s.Equal("Unable to connect to the server", health.Error)
}
