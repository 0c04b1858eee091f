//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"cuponx-backend/internal/domain/account"
	"cuponx-backend/internal/handler/middleware"
	"cuponx-backend/internal/pkg/errs"
	"cuponx-backend/internal/usecase"
	"cuponx-backend/tests/common/builder"
	"cuponx-backend/tests/common/httptest"
	usecasemock "cuponx-backend/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newProtectedRouter(t *testing.T, validator usecase.TokenValidator, roles ...account.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	m := middleware.NewAuthMiddleware(validator)

	handlers := []gin.HandlerFunc{m.RequireAuth()}
	if len(roles) > 0 {
		handlers = append(handlers, m.RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		identity, ok := middleware.GetIdentity(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": identity.AccountID, "role": identity.Role})
	})
	router.GET("/private", handlers...)
	return router
}

func TestRequireAuth(t *testing.T) {
	t.Run("missing bearer token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router := newProtectedRouter(t, usecasemock.NewMockTokenValidator(ctrl))

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/private", nil, "")

		httptest.AssertErrorCode(t, rec, http.StatusUnauthorized, "UNAUTHENTICATED")
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		validator.EXPECT().ValidateToken("bad").Return(nil, errs.Mark(errs.New("signature is invalid"), usecase.ErrInvalidSessionToken))
		router := newProtectedRouter(t, validator)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/private", nil, "bad")

		env := httptest.AssertErrorCode(t, rec, http.StatusUnauthorized, "INVALID_TOKEN")
		assert.Equal(t, "Token inválido o expirado", env.Message)
	})

	t.Run("valid token attaches the identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		validator := usecasemock.NewMockTokenValidator(ctrl)
		validator.EXPECT().ValidateToken("good").Return(builder.NewAccountBuilder().BuildIdentity(), nil)
		router := newProtectedRouter(t, validator)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/private", nil, "good")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":5,"role":"CLIENTE"}`, rec.Body.String())
	})
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name     string
		identity *builder.AccountBuilder
		allowed  []account.Role
		want     int
	}{
		{"consumer may purchase", builder.NewAccountBuilder(), []account.Role{account.RoleConsumer}, http.StatusOK},
		{"employee may not purchase", builder.NewAccountBuilder().AsEmployee(1), []account.Role{account.RoleConsumer}, http.StatusForbidden},
		{"operator may not redeem", builder.NewAccountBuilder().AsOperator(), []account.Role{account.RoleEmployee}, http.StatusForbidden},
		{"employee may redeem", builder.NewAccountBuilder().AsEmployee(1), []account.Role{account.RoleEmployee}, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := usecasemock.NewMockTokenValidator(ctrl)
			validator.EXPECT().ValidateToken("tok").Return(tc.identity.BuildIdentity(), nil)
			router := newProtectedRouter(t, validator, tc.allowed...)

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/private", nil, "tok")

			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
		})
	}
}
