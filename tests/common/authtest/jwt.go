//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"cuponx-backend/internal/pkg/config"
	"cuponx-backend/internal/pkg/jwt"
	"cuponx-backend/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens with the secrets the app under test uses.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T, sessionDuration time.Duration) *jwt.Service {
	t.Helper()
	if sessionDuration == 0 {
		d, err := time.ParseDuration(h.cfg.Duration)
		require.NoError(t, err)
		sessionDuration = d
	}
	resetDuration, err := time.ParseDuration(h.cfg.ResetDuration)
	require.NoError(t, err)
	return jwt.NewService(jwt.Options{
		SessionSecret:   h.cfg.Secret,
		SessionDuration: sessionDuration,
		ResetSecret:     h.cfg.ResetSigningSecret(),
		ResetDuration:   resetDuration,
	})
}

func subject(identity *shared.Identity) jwt.Subject {
	return jwt.Subject{
		AccountID:  identity.AccountID,
		Role:       identity.Role,
		Email:      identity.Email,
		MerchantID: identity.MerchantID,
	}
}

func (h *JWTHelper) GenerateToken(t *testing.T, identity *shared.Identity) string {
	t.Helper()
	token, err := h.service(t, 0).GenerateSessionToken(subject(identity))
	require.NoError(t, err)
	return token
}

// GenerateResetToken signs a password-reset token, which must never pass as a session.
func (h *JWTHelper) GenerateResetToken(t *testing.T, identity *shared.Identity) string {
	t.Helper()
	token, err := h.service(t, 0).GenerateResetToken(subject(identity))
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, identity *shared.Identity) string {
	t.Helper()
	token, err := h.service(t, time.Millisecond).GenerateSessionToken(subject(identity))
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	return token
}
