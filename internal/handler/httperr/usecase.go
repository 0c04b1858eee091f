package httperr

import (
	"log/slog"
	"net/http"

	"cuponx-backend/internal/pkg/errs"
	"cuponx-backend/internal/usecase"
	"cuponx-backend/internal/usecase/commands"
	"cuponx-backend/internal/usecase/queries"
	"cuponx-backend/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeBusinessRule       = "BUSINESS_RULE_VIOLATION"
	CodeInternal           = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

const internalMessage = "Error interno del servidor"

type errorClass struct {
	class   error
	status  int
	code    string
	message string
}

// first match wins; ErrInternal and unclassified errors fall through to 500
var errorClasses = []errorClass{
	{errs.ErrInvalidInput, http.StatusBadRequest, CodeInvalidInput, "Solicitud inválida"},
	{errs.ErrUnauthenticated, http.StatusUnauthorized, CodeUnauthenticated, "No autenticado"},
	{errs.ErrForbidden, http.StatusForbidden, CodeForbidden, "No autorizado"},
	{errs.ErrNotFound, http.StatusNotFound, CodeNotFound, "Recurso no encontrado"},
	{errs.ErrConflict, http.StatusConflict, CodeConflict, "Conflicto con el estado actual"},
	{errs.ErrBusinessRule, http.StatusUnprocessableEntity, CodeBusinessRule, "Operación no permitida"},
}

type knownError struct {
	err  error
	code string // empty: the class code
}

// Concrete errors whose message is safe to show. They are matched before the
// classes because a class is not reachable through a marked sentinel.
var knownErrors = []knownError{
	{shared.ErrUnauthenticated, ""},
	{shared.ErrForbidden, ""},
	{usecase.ErrInvalidSessionToken, "INVALID_TOKEN"},

	{commands.ErrCredentialsRequired, ""},
	{commands.ErrInvalidCredentials, "INVALID_CREDENTIALS"},
	{commands.ErrAmbiguousAccount, "AMBIGUOUS_ACCOUNT"},
	{commands.ErrVerificationRequired, "ACCOUNT_NOT_VERIFIED"},
	{commands.ErrTokenGeneration, ""},
	{commands.ErrRegistrationIncomplete, ""},
	{commands.ErrInvalidEmail, ""},
	{commands.ErrInvalidNationalID, ""},
	{commands.ErrPasswordTooShort, ""},
	{commands.ErrEmailTaken, "EMAIL_TAKEN"},
	{commands.ErrNationalIDTaken, "NATIONAL_ID_TAKEN"},
	{commands.ErrVerificationTokenRequired, ""},
	{commands.ErrVerificationTokenInvalid, "INVALID_VERIFICATION_TOKEN"},
	{commands.ErrEmailRequired, ""},
	{commands.ErrResetFieldsRequired, ""},
	{commands.ErrResetTokenInvalid, "INVALID_RESET_TOKEN"},
	{commands.ErrChangeFieldsRequired, ""},
	{commands.ErrCurrentPasswordIncorrect, ""},

	{commands.ErrInvalidOfferID, ""},
	{commands.ErrInvalidQuantity, ""},
	{commands.ErrInvalidCardNumber, ""},
	{commands.ErrInvalidCVV, ""},
	{commands.ErrInvalidCardExpiry, ""},
	{commands.ErrCardExpired, ""},
	{commands.ErrOfferNotFound, ""},
	{commands.ErrOfferNotAvailable, "OFFER_NOT_AVAILABLE"},
	{commands.ErrCapacityExceeded, "CAPACITY_EXCEEDED"},
	{commands.ErrCodeGeneration, ""},
	{commands.ErrRedeemFieldsRequired, ""},
	{commands.ErrInvalidCouponCode, ""},
	{commands.ErrCouponNotFound, ""},
	{commands.ErrMissingMerchantScope, ""},
	{commands.ErrWrongMerchant, "WRONG_MERCHANT"},
	{commands.ErrAlreadyRedeemed, "ALREADY_REDEEMED"},
	{commands.ErrCouponExpired, "COUPON_EXPIRED"},
	{commands.ErrNationalIDMismatch, "NATIONAL_ID_MISMATCH"},
	{commands.ErrInvalidCouponID, ""},

	{queries.ErrAccountNotFound, ""},
	{queries.ErrAccountInactive, "ACCOUNT_INACTIVE"},
	{queries.ErrMerchantNotFound, ""},
	{queries.ErrInvalidLimit, ""},
}

// Resolve maps a use-case error to its status, machine code and public message.
func Resolve(err error) (status int, code, message string) {
	for _, k := range knownErrors {
		if errs.Is(err, k.err) {
			status, code, _ = classify(k.err)
			if k.code != "" {
				code = k.code
			}
			return status, code, k.err.Error()
		}
	}
	return classify(err)
}

func classify(err error) (int, string, string) {
	for _, c := range errorClasses {
		if errs.Is(err, c.class) {
			return c.status, c.code, c.message
		}
	}
	return http.StatusInternalServerError, CodeInternal, internalMessage
}

// AbortWithUseCaseError writes the envelope for err. Typed errors add their details as data.
func AbortWithUseCaseError(c *gin.Context, err error) {
	status, code, message := Resolve(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "path", c.FullPath(), "error", err.Error())
	}
	AbortWithCode(c, status, code, err, message, errorData(err))
}

func errorData(err error) any {
	var ambiguous *commands.AmbiguousAccountError
	if errs.As(err, &ambiguous) {
		return gin.H{"accounts": ambiguous.Roles}
	}
	var capacity *commands.CapacityExceededError
	if errs.As(err, &capacity) {
		return gin.H{"solicitados": capacity.Requested, "disponibles": capacity.Remaining}
	}
	return nil
}
