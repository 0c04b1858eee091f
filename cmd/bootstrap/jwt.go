package bootstrap

import (
	"fmt"
	"time"

	"cuponx-backend/internal/pkg/config"
	"cuponx-backend/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	sessionDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRES_IN: %w", err)
	}

	resetDuration, err := time.ParseDuration(cfg.JWT.ResetDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid RESET_TOKEN_EXPIRES_IN: %w", err)
	}

	return jwt.NewService(jwt.Options{
		SessionSecret:   cfg.JWT.Secret,
		SessionDuration: sessionDuration,
		ResetSecret:     cfg.JWT.ResetSigningSecret(),
		ResetDuration:   resetDuration,
	}), nil
}
