//go:build e2e

package auth_test

import (
	"net/http"
	"strings"
	"testing"

	"cuponx-backend/internal/domain/account"
	reqdto "cuponx-backend/internal/handler/dto/request"
	"cuponx-backend/internal/handler/dto/response"
	"cuponx-backend/internal/usecase/shared"
	"cuponx-backend/tests/common/authtest"
	"cuponx-backend/tests/common/builder"
	"cuponx-backend/tests/common/dbtest"
	"cuponx-backend/tests/common/httptest"
	"cuponx-backend/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	loginPath          = "/api/auth/login"
	registerPath       = "/api/auth/register"
	verifyPath         = "/api/auth/verify"
	forgotPasswordPath = "/api/auth/forgot-password"
	resetPasswordPath  = "/api/auth/reset-password"
	changePasswordPath = "/api/auth/change-password"
	mePath             = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

// tokenFromMail returns the token query value of the link in the last mail sent to the address.
func (s *authSuite) tokenFromMail(to string) string {
	mails := s.Notifier.MailsTo(to)
	s.Require().NotEmpty(mails, "no mail sent to %s", to)
	_, token, found := strings.Cut(mails[len(mails)-1].Text, "token=")
	s.Require().True(found, "mail has no token link")
	return strings.TrimSpace(token)
}

func (s *authSuite) register(email string) {
	auth := builder.NewAuthBuilder()
	auth.Email = email
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerPath, auth.BuildRegisterDTO(), "")
	var res response.RegisterResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	s.Positive(res.ID)
}

func (s *authSuite) TestRegistrationFlow() {
	const email = "nuevo@example.com"

	s.Run("register, verify and log in as consumer", func() {
		s.register(email)

		events := s.Notifier.Events(shared.EventAccountRegistered)
		s.Require().Len(events, 1)
		s.Require().NotNil(events[0].Mail)
		s.Contains(events[0].Mail.Text, "Haz clic en el siguiente enlace para verificar tu cuenta:")
		s.Contains(events[0].Mail.Text, s.Config.Server.PublicURL+"/verify?token=")

		token := s.tokenFromMail(email)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, verifyPath+"?token="+token, nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
		httptest.AssertSuccessMessage(s.T(), w, "Cuenta verificada correctamente")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginPath,
			reqdto.LoginRequest{Email: "  NUEVO@example.com ", Password: builder.TestPassword}, "")
		var login response.LoginResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &login)
		s.NotEmpty(login.Token)
		s.Equal(account.RoleConsumer.String(), login.User.Role)
		s.Equal(email, login.User.Email)
		s.Nil(login.User.MerchantID)
		s.Positive(login.ExpiresIn)
	})

	s.Run("login before verification is refused", func() {
		s.register(email)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginPath,
			reqdto.LoginRequest{Email: email, Password: builder.TestPassword}, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusForbidden, "ACCOUNT_NOT_VERIFIED")
	})

	s.Run("replaying the verification link reports already verified", func() {
		s.register(email)
		token := s.tokenFromMail(email)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, verifyPath+"?token="+token, nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, verifyPath+"?token="+token, nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
		httptest.AssertSuccessMessage(s.T(), w, "Tu cuenta ya estaba verificada. Puedes iniciar sesión.")
	})

	s.Run("unknown verification token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, verifyPath+"?token=nope", nil, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusBadRequest, "INVALID_VERIFICATION_TOKEN")
	})

	s.Run("duplicate email and national id", func() {
		s.register(email)

		dup := builder.NewAuthBuilder()
		dup.Email = email
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerPath, dup.BuildRegisterDTO(), "")
		httptest.AssertErrorCode(s.T(), w, http.StatusConflict, "EMAIL_TAKEN")

		other := builder.NewAuthBuilder()
		other.Email = "otro@example.com"
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerPath, other.BuildRegisterDTO(), "")
		httptest.AssertErrorCode(s.T(), w, http.StatusConflict, "NATIONAL_ID_TAKEN")
	})

	s.Run("invalid registration input", func() {
		req := builder.NewAuthBuilder().BuildRegisterDTO()
		req.NationalID = "123456789"
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerPath, req, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "DUI inválido")
		s.Empty(s.Notifier.Events(shared.EventAccountRegistered))
	})
}

func (s *authSuite) TestLogin() {
	s.Run("operator and merchant admin", func() {
		token := authtest.LoginUser(s.T(), s.Router, dbtest.OperatorEmail, builder.TestPassword)
		s.NotEmpty(token)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginPath,
			reqdto.LoginRequest{Email: dbtest.MerchantAMail, Password: builder.TestPassword}, "")
		var login response.LoginResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &login)
		s.Equal(account.RoleMerchantAdmin.String(), login.User.Role)
		s.Require().NotNil(login.User.MerchantID)
		s.Equal(dbtest.MerchantAID, *login.User.MerchantID)
	})

	s.Run("employee carries its merchant", func() {
		dbtest.CreateEmployee(s.T(), s.DB, dbtest.MerchantBID, "cajero@spa.example.com")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginPath,
			reqdto.LoginRequest{Email: "cajero@spa.example.com", Password: builder.TestPassword}, "")
		var login response.LoginResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &login)
		s.Equal(account.RoleEmployee.String(), login.User.Role)
		s.Require().NotNil(login.User.MerchantID)
		s.Equal(dbtest.MerchantBID, *login.User.MerchantID)
	})

	s.Run("wrong password and unknown email look the same", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginPath,
			reqdto.LoginRequest{Email: dbtest.OperatorEmail, Password: "incorrecta"}, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusUnauthorized, "INVALID_CREDENTIALS")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginPath,
			reqdto.LoginRequest{Email: "nadie@example.com", Password: builder.TestPassword}, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusUnauthorized, "INVALID_CREDENTIALS")
	})

	s.Run("email shared by merchant and consumer is ambiguous", func() {
		dbtest.CreateConsumer(s.T(), s.DB, dbtest.MerchantAMail, "11111111-1")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginPath,
			reqdto.LoginRequest{Email: dbtest.MerchantAMail, Password: builder.TestPassword}, "")
		env := httptest.AssertErrorCode(s.T(), w, http.StatusConflict, "AMBIGUOUS_ACCOUNT")
		s.Equal([]any{account.RoleMerchantAdmin.String(), account.RoleConsumer.String()}, env.Data["accounts"])
	})
}

func (s *authSuite) TestPasswordRecovery() {
	const email = "ana@example.com"

	s.Run("unknown email gets the generic answer and no mail", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, forgotPasswordPath,
			reqdto.ForgotPasswordRequest{Email: "nadie@example.com"}, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
		httptest.AssertSuccessMessage(s.T(), w, "Si el correo existe, se enviará un enlace de recuperación.")
		s.Empty(s.Notifier.Events(shared.EventPasswordResetRequested))
	})

	s.Run("ambiguous email gets the generic answer and no mail", func() {
		dbtest.CreateConsumer(s.T(), s.DB, dbtest.MerchantAMail, "11111111-1")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, forgotPasswordPath,
			reqdto.ForgotPasswordRequest{Email: dbtest.MerchantAMail}, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
		s.Empty(s.Notifier.MailsTo(dbtest.MerchantAMail))
	})

	s.Run("reset link sets a new password", func() {
		dbtest.CreateConsumer(s.T(), s.DB, email, "22222222-2")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, forgotPasswordPath,
			reqdto.ForgotPasswordRequest{Email: email}, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
		s.Contains(s.Notifier.MailsTo(email)[0].Text, s.Config.Server.PublicURL+"/reset-password?token=")

		token := s.tokenFromMail(email)
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, resetPasswordPath,
			reqdto.ResetPasswordRequest{Token: token, NewPassword: "nuevaClave9"}, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginPath,
			reqdto.LoginRequest{Email: email, Password: builder.TestPassword}, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusUnauthorized, "INVALID_CREDENTIALS")

		s.NotEmpty(authtest.LoginUser(s.T(), s.Router, email, "nuevaClave9"))
	})

	s.Run("session token is not a reset token", func() {
		id := dbtest.CreateConsumer(s.T(), s.DB, email, "22222222-2")
		session := s.JWT.GenerateToken(s.T(), &shared.Identity{AccountID: id, Role: account.RoleConsumer, Email: email})

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, resetPasswordPath,
			reqdto.ResetPasswordRequest{Token: session, NewPassword: "nuevaClave9"}, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusUnauthorized, "INVALID_RESET_TOKEN")
	})

	s.Run("new password too short", func() {
		id := dbtest.CreateConsumer(s.T(), s.DB, email, "22222222-2")
		token := s.JWT.GenerateResetToken(s.T(), &shared.Identity{AccountID: id, Role: account.RoleConsumer, Email: email})

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, resetPasswordPath,
			reqdto.ResetPasswordRequest{Token: token, NewPassword: "corta"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "al menos 8 caracteres")
	})
}

func (s *authSuite) TestSession() {
	const email = "ana@example.com"

	s.Run("me returns the session account", func() {
		dbtest.CreateConsumer(s.T(), s.DB, email, "22222222-2")
		token := authtest.LoginUser(s.T(), s.Router, email, builder.TestPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, mePath, nil, token)
		var me response.MeResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
		s.Equal(email, me.Email)
		s.Equal(account.RoleConsumer.String(), me.Role)
		s.Require().NotNil(me.Verified)
		s.True(*me.Verified)
	})

	s.Run("change password", func() {
		dbtest.CreateConsumer(s.T(), s.DB, email, "22222222-2")
		token := authtest.LoginUser(s.T(), s.Router, email, builder.TestPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, changePasswordPath,
			reqdto.ChangePasswordRequest{CurrentPassword: "incorrecta", NewPassword: "nuevaClave9"}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Contraseña actual incorrecta")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, changePasswordPath,
			reqdto.ChangePasswordRequest{CurrentPassword: builder.TestPassword, NewPassword: "nuevaClave9"}, token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)

		s.NotEmpty(authtest.LoginUser(s.T(), s.Router, email, "nuevaClave9"))
	})

	s.Run("missing, forged and expired tokens", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, mePath, nil, "")
		httptest.AssertErrorCode(s.T(), w, http.StatusUnauthorized, "UNAUTHENTICATED")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, mePath, nil, "not-a-jwt")
		httptest.AssertErrorCode(s.T(), w, http.StatusUnauthorized, "INVALID_TOKEN")

		id := dbtest.CreateConsumer(s.T(), s.DB, email, "22222222-2")
		expired := s.JWT.CreateExpiredToken(s.T(), &shared.Identity{AccountID: id, Role: account.RoleConsumer, Email: email})
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, mePath, nil, expired)
		httptest.AssertErrorCode(s.T(), w, http.StatusUnauthorized, "INVALID_TOKEN")
	})
}
