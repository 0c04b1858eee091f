//go:build unit

package api_test

import (
	"strings"

	"cuponx-backend/internal/handler/middleware"
	"cuponx-backend/internal/usecase/shared"
	"cuponx-backend/tests/common/builder"

	"github.com/gin-gonic/gin"
)

const (
	consumerToken = "consumer-token"
	employeeToken = "employee-token"
	operatorToken = "operator-token"
)

// fakeAuth attaches the identity registered for the bearer token and lets
// anonymous requests through, so handlers see exactly what RequireAuth would set.
func fakeAuth() gin.HandlerFunc {
	identities := map[string]*shared.Identity{
		consumerToken: builder.NewAccountBuilder().BuildIdentity(),
		employeeToken: builder.NewAccountBuilder().AsEmployee(1).BuildIdentity(),
		operatorToken: builder.NewAccountBuilder().AsOperator().BuildIdentity(),
	}
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if identity, ok := identities[token]; ok {
			middleware.SetIdentity(c, identity)
		}
		c.Next()
	}
}
