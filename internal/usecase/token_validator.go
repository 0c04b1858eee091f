package usecase

import (
	"cuponx-backend/internal/domain/account"
	"cuponx-backend/internal/pkg/errs"
	"cuponx-backend/internal/pkg/jwt"
	"cuponx-backend/internal/usecase/shared"
)

var ErrInvalidSessionToken = errs.Class(errs.ErrUnauthenticated, "Token inválido o expirado")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*shared.Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (*shared.Identity, error) {
	claims, err := t.jwtService.ValidateSessionToken(tokenString)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSessionToken)
	}

	role, err := account.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSessionToken)
	}

	return &shared.Identity{
		AccountID:  claims.AccountID,
		Role:       role,
		Email:      claims.Email,
		MerchantID: claims.MerchantID,
	}, nil
}
