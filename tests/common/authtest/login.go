//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"cuponx-backend/internal/handler/dto/request"
	"cuponx-backend/internal/handler/dto/response"
	"cuponx-backend/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser logs in over HTTP and returns the session token.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.LoginResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	require.NotEmpty(t, res.Token, "session token missing from login response")

	return res.Token
}
