//go:build unit

package httperr_test

import (
	"net/http"
	"testing"

	"cuponx-backend/internal/handler/httperr"
	"cuponx-backend/internal/infra"
	"cuponx-backend/internal/pkg/errs"
	"cuponx-backend/internal/usecase/commands"
	"cuponx-backend/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name:    "concrete error keeps its own message and code",
			err:     commands.ErrWrongMerchant,
			status:  http.StatusForbidden,
			code:    "WRONG_MERCHANT",
			message: "El cupón no pertenece a tu empresa",
		},
		{
			name:    "wrapped concrete error",
			err:     errs.Wrap(commands.ErrAlreadyRedeemed, "redeem RES0011234567"),
			status:  http.StatusUnprocessableEntity,
			code:    "ALREADY_REDEEMED",
			message: "El cupón ya fue canjeado",
		},
		{
			name:    "concrete error without a specific code uses its class",
			err:     shared.ErrForbidden,
			status:  http.StatusForbidden,
			code:    httperr.CodeForbidden,
			message: "No autorizado",
		},
		{
			name:    "unlisted error of a known class gets the class message",
			err:     errs.Class(errs.ErrNotFound, "something else"),
			status:  http.StatusNotFound,
			code:    httperr.CodeNotFound,
			message: "Recurso no encontrado",
		},
		{
			name:    "repository failure is internal",
			err:     infra.WrapRepoErr("insert coupon", errs.New("conn refused"), infra.KindDBFailure),
			status:  http.StatusInternalServerError,
			code:    httperr.CodeInternal,
			message: "Error interno del servidor",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, code, message := httperr.Resolve(tc.err)

			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, tc.message, message)
		})
	}
}

func TestCodeForStatus(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", httperr.CodeForStatus(http.StatusNotFound))
	assert.Equal(t, "SERVICE_UNAVAILABLE", httperr.CodeForStatus(http.StatusServiceUnavailable))
	assert.Equal(t, "ERROR", httperr.CodeForStatus(599))
}
