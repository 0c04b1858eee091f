//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"cuponx-backend/internal/domain/offer"
	"cuponx-backend/internal/handler/api"
	resdto "cuponx-backend/internal/handler/dto/response"
	"cuponx-backend/internal/pkg/errs"
	"cuponx-backend/internal/usecase/commands"
	"cuponx-backend/internal/usecase/queries"
	"cuponx-backend/internal/usecase/shared"
	"cuponx-backend/tests/common/builder"
	"cuponx-backend/tests/common/httptest"
	"cuponx-backend/tests/common/testutil"
	commandsmock "cuponx-backend/tests/mock/commands"
	queriesmock "cuponx-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCouponCommands
	mockQueries  *queriesmock.MockCouponQueries
	handler      *api.CouponHandler
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCouponCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCouponQueries(s.mockCtrl)
	s.handler = api.NewCouponHandler(s.mockCommands, s.mockQueries)

	s.router.Use(fakeAuth())
	s.router.GET("/cupones/clientes/:id/cupones", s.handler.ListByConsumer)
	s.router.POST("/cupones/comprar", s.handler.Purchase)
	s.router.POST("/cupones/canjear", s.handler.Redeem)
	s.router.DELETE("/cupones/:id", s.handler.Delete)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

// ================================================================================
// TestPurchase
// ================================================================================

func (s *CouponHandlerTestSuite) TestPurchase() {
	url := "/cupones/comprar"
	consumer := builder.NewAccountBuilder().BuildIdentity()
	purchasedAt := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	s.Run("success: 201 with every issued code", func() {
		reqBody := builder.NewPurchaseRequestBuilder().With(func(b *builder.PurchaseRequestBuilder) {
			b.Quantity = 2
		}).BuildDTO()
		s.mockCommands.EXPECT().Purchase(gomock.Any(), consumer, reqBody.ToInput()).
			Return(&commands.PurchaseResult{
				OfferID:     1,
				OfferTitle:  "2x1 en pizzas",
				Codes:       []string{"RES0011234567", "RES0017654321"},
				UnitPrice:   offer.Money(1050),
				Total:       offer.Money(2100),
				PurchasedAt: purchasedAt,
				CardLast4:   "1111",
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, consumerToken)

		var got resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		want := resdto.PurchaseResponse{
			OfferID:     1,
			OfferTitle:  "2x1 en pizzas",
			Quantity:    2,
			Codes:       []string{"RES0011234567", "RES0017654321"},
			UnitPrice:   "10.50",
			Total:       "21.00",
			PurchasedAt: purchasedAt,
			CardLast4:   "1111",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			s.T().Errorf("purchase response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: capacity exceeded reports what is left", func() {
		capacity := errs.Mark(&commands.CapacityExceededError{Requested: 3, Remaining: 2}, commands.ErrCapacityExceeded)
		s.mockCommands.EXPECT().Purchase(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, capacity)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			builder.NewPurchaseRequestBuilder().BuildDTO(), consumerToken)

		env := httptest.AssertErrorCode(s.T(), rec, http.StatusUnprocessableEntity, "CAPACITY_EXCEEDED")
		s.Equal(float64(3), env.Data["solicitados"])
		s.Equal(float64(2), env.Data["disponibles"])
	})

	s.Run("error: use case failures", func() {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{"bad quantity", commands.ErrInvalidQuantity, http.StatusBadRequest, "INVALID_INPUT"},
			{"bad card", commands.ErrInvalidCardNumber, http.StatusBadRequest, "INVALID_INPUT"},
			{"not a consumer", shared.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
			{"unknown offer", commands.ErrOfferNotFound, http.StatusNotFound, "NOT_FOUND"},
			{"offer not live", commands.ErrOfferNotAvailable, http.StatusUnprocessableEntity, "OFFER_NOT_AVAILABLE"},
			{"code space exhausted", commands.ErrCodeGeneration, http.StatusInternalServerError, "INTERNAL_ERROR"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Purchase(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
					builder.NewPurchaseRequestBuilder().BuildDTO(), consumerToken)

				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
			})
		}
	})

	s.Run("error: holder name too long", func() {
		reqBody := builder.NewPurchaseRequestBuilder().With(func(b *builder.PurchaseRequestBuilder) {
			b.Card.Holder = strings.Repeat("a", 121)
		}).BuildDTO()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, consumerToken)

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_INPUT")
	})

	s.Run("error: payload types that do not bind", func() {
		base := builder.NewPurchaseRequestBuilder().BuildDTO()
		cases := map[string]map[string]any{
			"quantity as text":    testutil.DtoMap(s.T(), base, testutil.Field("cantidad", "dos")),
			"card number as json": testutil.DtoMap(s.T(), base, testutil.Field("tarjeta.numero", 4111111111111111)),
		}
		for name, body := range cases {
			s.Run(name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, consumerToken)
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_INPUT")
			})
		}
	})
}

// ================================================================================
// TestRedeem
// ================================================================================

func (s *CouponHandlerTestSuite) TestRedeem() {
	url := "/cupones/canjear"
	employee := builder.NewAccountBuilder().AsEmployee(1).BuildIdentity()
	reqBody := builder.NewCouponBuilder().BuildRedeemDTO()

	s.Run("success", func() {
		redeemedAt := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().Redeem(gomock.Any(), employee, reqBody.ToInput()).
			Return(&commands.RedeemResult{
				Code:         reqBody.Code,
				RedeemedAt:   redeemedAt,
				OfferTitle:   "2x1 en pizzas",
				ConsumerName: "Ana Martínez",
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, employeeToken)

		var got resdto.RedeemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(reqBody.Code, got.Code)
		s.True(redeemedAt.Equal(got.RedeemedAt))
		s.Equal("Ana Martínez", got.ConsumerName)
	})

	s.Run("error: redemption failures", func() {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{"other merchant", commands.ErrWrongMerchant, http.StatusForbidden, "WRONG_MERCHANT"},
			{"unknown code", commands.ErrCouponNotFound, http.StatusNotFound, "NOT_FOUND"},
			{"already redeemed", commands.ErrAlreadyRedeemed, http.StatusUnprocessableEntity, "ALREADY_REDEEMED"},
			{"expired", commands.ErrCouponExpired, http.StatusUnprocessableEntity, "COUPON_EXPIRED"},
			{"dui mismatch", commands.ErrNationalIDMismatch, http.StatusUnprocessableEntity, "NATIONAL_ID_MISMATCH"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Redeem(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, employeeToken)

				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
			})
		}
	})
}

// ================================================================================
// TestListByConsumer / TestDelete
// ================================================================================

func (s *CouponHandlerTestSuite) TestListByConsumer() {
	consumer := builder.NewAccountBuilder().BuildIdentity()

	s.Run("success: prices rendered with two decimals", func() {
		s.mockQueries.EXPECT().ListByConsumer(gomock.Any(), consumer, int64(5)).
			Return([]*queries.ConsumerCouponView{{
				ID:           10,
				Code:         "RES0011234567",
				State:        "disponible",
				PricePaid:    offer.Money(1000),
				OfferTitle:   "2x1 en pizzas",
				MerchantName: "Restaurante Uno",
			}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cupones/clientes/5/cupones", nil, consumerToken)

		var got []resdto.ConsumerCouponResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		if s.Len(got, 1) {
			s.Equal("10.00", got[0].PricePaid)
			s.Equal("disponible", got[0].State)
			s.Equal("Restaurante Uno", got[0].MerchantName)
		}
	})

	s.Run("error: another consumer's coupons", func() {
		s.mockQueries.EXPECT().ListByConsumer(gomock.Any(), consumer, int64(9)).Return(nil, shared.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cupones/clientes/9/cupones", nil, consumerToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "No autorizado")
	})

	s.Run("error: non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cupones/clientes/abc/cupones", nil, consumerToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "ID inválido")
	})
}

func (s *CouponHandlerTestSuite) TestDelete() {
	operator := builder.NewAccountBuilder().AsOperator().BuildIdentity()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), operator, int64(10)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cupones/10", nil, operatorToken)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: zero id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cupones/0", nil, operatorToken)

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_INPUT")
	})

	s.Run("error: unknown coupon", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(99)).Return(commands.ErrCouponNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cupones/99", nil, operatorToken)

		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})
}
