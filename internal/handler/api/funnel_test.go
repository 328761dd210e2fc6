//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"ticket-monarch/internal/domain/booking"
	"ticket-monarch/internal/domain/checkout"
	"ticket-monarch/internal/handler/api"
	reqdto "ticket-monarch/internal/handler/dto/request"
	resdto "ticket-monarch/internal/handler/dto/response"
	"ticket-monarch/internal/pkg/errs"
	"ticket-monarch/internal/usecase"
	"ticket-monarch/internal/usecase/checkoutform"
	"ticket-monarch/tests/common/builder"
	"ticket-monarch/tests/common/httptest"
	"ticket-monarch/tests/common/testutil"
	usecasemock "ticket-monarch/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FunnelHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockFunnel *usecasemock.MockFunnelUseCase
	handler    *api.FunnelHandler
	visitor    uuid.UUID
}

func (s *FunnelHandlerTestSuite) SetupTest() {
	s.router = httptest.NewTestRouter()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockFunnel = usecasemock.NewMockFunnelUseCase(s.mockCtrl)
	s.handler = api.NewFunnelHandler(s.mockFunnel)
	s.visitor = uuid.New()

	// Stand-in for the session middleware
	session := func(c *gin.Context) {
		c.Set("visitor_id", s.visitor)
		c.Next()
	}

	s.router.GET("/concerts", session, s.handler.ListConcerts)
	s.router.GET("/concerts/:id/sections", session, s.handler.SeatMap)
	s.router.POST("/funnel/selection", session, s.handler.SelectSection)
	s.router.GET("/funnel/checkout", session, s.handler.OpenCheckout)
	s.router.PATCH("/funnel/checkout/fields", session, s.handler.ChangeField)
	s.router.POST("/funnel/checkout", session, s.handler.Submit)
	s.router.GET("/funnel/confirmation", session, s.handler.Confirmation)
	s.router.DELETE("/funnel/confirmation", session, s.handler.ReturnHome)
	s.router.GET("/no-session/confirmation", s.handler.Confirmation)
}

func (s *FunnelHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFunnelHandlerSuite(t *testing.T) {
	suite.Run(t, new(FunnelHandlerTestSuite))
}

// ================================================================================
// Catalog pages
// ================================================================================

func (s *FunnelHandlerTestSuite) TestListConcerts() {
	concert := builder.NewSelectionBuilder().Concert
	s.mockFunnel.EXPECT().Home(gomock.Any(), s.visitor).Return([]booking.Concert{concert}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/concerts", nil)

	var body []resdto.ConcertResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 1)
	s.Equal("Taylor Swift", body[0].Name)
	s.Equal("New York, NY • Madison Square Garden", body[0].Location)
	s.Equal("$150.00", body[0].Price)
}

func (s *FunnelHandlerTestSuite) TestSeatMap() {
	sel := builder.NewSelectionBuilder()

	s.Run("success", func() {
		s.mockFunnel.EXPECT().SeatMap(gomock.Any(), s.visitor, 1).
			Return(&usecase.SeatMap{Concert: sel.Concert, Sections: []booking.Section{sel.Section}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/concerts/1/sections", nil)

		var body resdto.SeatMapResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(1, body.Concert.ID)
		s.Require().Len(body.Sections, 1)
		s.Equal("101", body.Sections[0].Number)
		s.Equal("$75.00", body.Sections[0].Price)
	})

	s.Run("non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/concerts/abc/sections", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid concert id")
	})

	s.Run("unknown concert redirects home", func() {
		s.mockFunnel.EXPECT().SeatMap(gomock.Any(), s.visitor, 99).Return(nil, booking.ErrConcertNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/concerts/99/sections", nil)
		httptest.AssertRedirect(s.T(), rec, http.StatusNotFound, "/")
	})
}

// ================================================================================
// Selection
// ================================================================================

func (s *FunnelHandlerTestSuite) TestSelectSection() {
	url := "/funnel/selection"
	reqBody := reqdto.SelectSectionRequest{ConcertID: 1, Section: "101"}
	sel := builder.NewSelectionBuilder().Build()

	s.Run("success: 201 with checkout redirect", func() {
		s.mockFunnel.EXPECT().SelectSection(gomock.Any(), s.visitor, 1, "101").Return(&sel, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.SelectionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("/checkout", body.Redirect)
		s.Equal("101", body.Selection.SelectedSection)
		s.Equal(int64(7500), body.Selection.TotalCents)
	})

	invalid := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{name: "missing concert_id", mutate: testutil.Field("concert_id", nil)},
		{name: "zero concert_id", mutate: testutil.Field("concert_id", 0)},
		{name: "missing section", mutate: testutil.Field("section", nil)},
		{name: "empty section", mutate: testutil.Field("section", "")},
	}
	for _, tc := range invalid {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate))
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		})
	}

	s.Run("error: unknown section", func() {
		s.mockFunnel.EXPECT().SelectSection(gomock.Any(), s.visitor, 1, "101").Return(nil, booking.ErrSectionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Section not found")
	})
}

// ================================================================================
// Checkout
// ================================================================================

func (s *FunnelHandlerTestSuite) TestOpenCheckout() {
	sel := builder.NewSelectionBuilder().Build()

	s.Run("success", func() {
		s.mockFunnel.EXPECT().OpenCheckout(gomock.Any(), s.visitor).Return(&usecase.CheckoutPage{
			Selection: sel,
			Summary:   sel.Summary(),
			Form: checkoutform.Snapshot{
				Values: checkout.NewFormValues(),
				Errors: checkout.ValidationErrors{},
				State:  checkout.Idle(),
			},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/funnel/checkout", nil)

		var body resdto.CheckoutPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Taylor Swift", body.Summary.ConcertName)
		s.Equal("$75.00", body.Summary.Total)
		s.Equal(1, body.Summary.Count)
		s.Equal("idle", body.Form.State.Phase)
		s.Equal(checkout.DefaultCountry, body.Form.Values.Country)
		s.Equal(checkout.States(), body.States)
	})

	s.Run("no selection redirects home", func() {
		s.mockFunnel.EXPECT().OpenCheckout(gomock.Any(), s.visitor).Return(nil, errs.ErrSelectionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/funnel/checkout", nil)
		httptest.AssertRedirect(s.T(), rec, http.StatusConflict, "/")
	})

	s.Run("store failure is 500", func() {
		s.mockFunnel.EXPECT().OpenCheckout(gomock.Any(), s.visitor).
			Return(nil, errs.Mark(errors.New("redis down"), errs.ErrStoreOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/funnel/checkout", nil)
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
		s.Empty(body.Redirect)
	})
}

func (s *FunnelHandlerTestSuite) TestChangeField() {
	url := "/funnel/checkout/fields"

	s.Run("success", func() {
		values := checkout.NewFormValues()
		values.CardNumber = "4111 1111"
		s.mockFunnel.EXPECT().ChangeField(gomock.Any(), s.visitor, checkout.FieldCardNumber, "41111111").
			Return(&checkoutform.Snapshot{Values: values, Errors: checkout.ValidationErrors{}, State: checkout.Idle()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqdto.ChangeFieldRequest{Field: "card_number", Value: "41111111"})

		var body resdto.CheckoutFormResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("4111 1111", body.Values.CardNumber)
	})

	s.Run("unknown field", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqdto.ChangeFieldRequest{Field: "nickname", Value: "x"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown field")
	})

	s.Run("missing field name", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"value": "x"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("no selection", func() {
		s.mockFunnel.EXPECT().ChangeField(gomock.Any(), s.visitor, checkout.FieldCity, "X").Return(nil, errs.ErrSelectionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqdto.ChangeFieldRequest{Field: "city", Value: "X"})
		httptest.AssertRedirect(s.T(), rec, http.StatusConflict, "/")
	})
}

func (s *FunnelHandlerTestSuite) TestSubmit() {
	url := "/funnel/checkout"

	s.Run("success points to confirmation", func() {
		s.mockFunnel.EXPECT().Submit(gomock.Any(), s.visitor).Return(&checkoutform.Snapshot{
			Values: checkout.NewFormValues(),
			Errors: checkout.ValidationErrors{},
			State:  checkout.Succeeded("Checkout successful!"),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var body resdto.SubmitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("/confirmation", body.Redirect)
		s.Equal("succeeded", body.Form.State.Phase)
		s.Equal("Checkout successful!", body.Form.State.Message)
	})

	s.Run("backend failure stays on the page", func() {
		s.mockFunnel.EXPECT().Submit(gomock.Any(), s.visitor).Return(&checkoutform.Snapshot{
			Values: builder.NewFormBuilder().Build(),
			Errors: checkout.ValidationErrors{checkout.FieldZipCode: "zip_code must be 5 digits"},
			State:  checkout.Failed("Please correct the errors in the form"),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var body resdto.SubmitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Redirect)
		s.Equal("failed", body.Form.State.Phase)
		s.Equal(map[string]string{"zip_code": "zip_code must be 5 digits"}, body.Form.Errors)
	})

	s.Run("client validation is 422 with the form", func() {
		s.mockFunnel.EXPECT().Submit(gomock.Any(), s.visitor).Return(&checkoutform.Snapshot{
			Values: checkout.NewFormValues(),
			Errors: checkout.ValidationErrors{checkout.FieldFullName: "Full name is required"},
			State:  checkout.Idle(),
		}, errs.ErrValidationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Please correct the errors in the form")
		var form resdto.CheckoutFormResponse
		s.Require().NoError(json.Unmarshal(body.Detail, &form))
		s.Equal("Full name is required", form.Errors["full_name"])
	})

	s.Run("second submit is 409", func() {
		s.mockFunnel.EXPECT().Submit(gomock.Any(), s.visitor).Return(&checkoutform.Snapshot{
			Values: checkout.NewFormValues(),
			Errors: checkout.ValidationErrors{},
			State:  checkout.Submitting(),
		}, errs.ErrSubmitInProgress).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already being processed")
		s.Empty(body.Redirect)
	})

	s.Run("no selection redirects home", func() {
		s.mockFunnel.EXPECT().Submit(gomock.Any(), s.visitor).Return(nil, errs.ErrSelectionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertRedirect(s.T(), rec, http.StatusConflict, "/")
	})
}

// ================================================================================
// Confirmation
// ================================================================================

func (s *FunnelHandlerTestSuite) TestConfirmation() {
	orderDate := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	order := builder.NewSelectionBuilder().BuildOrder(builder.NewFormBuilder().Build(), orderDate)

	s.Run("success", func() {
		s.mockFunnel.EXPECT().Confirmation(gomock.Any(), s.visitor).Return(&order, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/funnel/confirmation", nil)

		var body resdto.ConfirmationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Congratulations!", body.Title)
		s.Equal("Jane Doe", body.CustomerName)
		s.Equal("1111", body.CardLast4)
		s.Equal("101", body.Summary.Section)
		s.True(orderDate.Equal(body.OrderDate))
	})

	s.Run("no order redirects home", func() {
		s.mockFunnel.EXPECT().Confirmation(gomock.Any(), s.visitor).Return(nil, errs.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/funnel/confirmation", nil)
		httptest.AssertRedirect(s.T(), rec, http.StatusConflict, "/")
	})

	s.Run("missing session is 500", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/no-session/confirmation", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *FunnelHandlerTestSuite) TestReturnHome() {
	s.mockFunnel.EXPECT().ReturnHome(gomock.Any(), s.visitor).Return(nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/funnel/confirmation", nil)

	var body map[string]string
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal("/", body["redirect"])
}
