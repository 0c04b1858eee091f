package shared

import (
	"cuponx-backend/internal/domain/account"
	"cuponx-backend/internal/pkg/errs"
)

var (
	ErrUnauthenticated = errs.Class(errs.ErrUnauthenticated, "No autenticado")
	ErrForbidden       = errs.Class(errs.ErrForbidden, "No autorizado")
)

// Identity is the caller resolved from a session token.
type Identity struct {
	AccountID  int64
	Role       account.Role
	Email      string
	MerchantID *int64
}

// RequireRole fails when no identity is resolved or its role is not allowed.
func RequireRole(id *Identity, allowed ...account.Role) error {
	if id == nil {
		return ErrUnauthenticated
	}
	if !id.Role.In(allowed...) {
		return ErrForbidden
	}
	return nil
}

// RequireSelfOrRole lets a consumer through for their own id, and any role in allowed for every id.
func RequireSelfOrRole(id *Identity, targetID int64, allowed ...account.Role) error {
	if id == nil {
		return ErrUnauthenticated
	}
	if id.Role == account.RoleConsumer && id.AccountID == targetID {
		return nil
	}
	if id.Role.In(allowed...) {
		return nil
	}
	return ErrForbidden
}
