package middleware

import (
	"log/slog"
	"strings"

	"cuponx-backend/internal/domain/account"
	"cuponx-backend/internal/handler/httperr"
	"cuponx-backend/internal/usecase"
	"cuponx-backend/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxIdentityKey = "identity"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithUseCaseError(c, shared.ErrUnauthenticated)
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithUseCaseError(c, err)
			return
		}

		SetIdentity(c, identity)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(allowed ...account.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, _ := GetIdentity(c)
		if err := shared.RequireRole(identity, allowed...); err != nil {
			httperr.AbortWithUseCaseError(c, err)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func SetIdentity(c *gin.Context, identity *shared.Identity) {
	c.Set(ctxIdentityKey, identity)
}

func GetIdentity(c *gin.Context) (*shared.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*shared.Identity)
	return identity, ok && identity != nil
}
