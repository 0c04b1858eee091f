//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"cuponx-backend/internal/domain/account"
	"cuponx-backend/internal/handler/api"
	resdto "cuponx-backend/internal/handler/dto/response"
	"cuponx-backend/internal/pkg/errs"
	"cuponx-backend/internal/pkg/ptr"
	"cuponx-backend/internal/usecase"
	"cuponx-backend/internal/usecase/commands"
	"cuponx-backend/internal/usecase/queries"
	"cuponx-backend/internal/usecase/shared"
	"cuponx-backend/tests/common/builder"
	"cuponx-backend/tests/common/httptest"
	"cuponx-backend/tests/common/testutil"
	commandsmock "cuponx-backend/tests/mock/commands"
	queriesmock "cuponx-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockAccountQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAccountQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries)

	s.router.Use(fakeAuth())
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/register", s.handler.Register)
	s.router.GET("/auth/verify", s.handler.Verify)
	s.router.POST("/auth/forgot-password", s.handler.ForgotPassword)
	s.router.POST("/auth/reset-password", s.handler.ResetPassword)
	s.router.POST("/auth/change-password", s.handler.ChangePassword)
	s.router.GET("/auth/me", s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

// ================================================================================
// TestLogin
// ================================================================================

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()

	s.Run("success: token and session user in data", func() {
		merchantID := int64(1)
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(&commands.LoginResult{
				Token:     "signed-token",
				ExpiresIn: 8 * time.Hour,
				User: commands.SessionUser{
					ID:         7,
					Role:       account.RoleEmployee,
					Email:      reqBody.Email,
					MerchantID: &merchantID,
				},
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var got resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		want := resdto.LoginResponse{
			Token:     "signed-token",
			ExpiresIn: 28800,
			User: resdto.SessionUserResponse{
				ID:         7,
				Role:       "EMPLEADO",
				Email:      reqBody.Email,
				MerchantID: &merchantID,
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			s.T().Errorf("login response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: use case errors map to their status and code", func() {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{"missing fields", commands.ErrCredentialsRequired, http.StatusBadRequest, "INVALID_INPUT"},
			{"bad credentials", commands.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
			{"unverified", commands.ErrVerificationRequired, http.StatusForbidden, "ACCOUNT_NOT_VERIFIED"},
			{"storage failure", errs.New("connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code)
			})
		}
	})

	s.Run("error: ambiguous email lists the roles and never picks one", func() {
		ambiguous := errs.Mark(&commands.AmbiguousAccountError{
			Roles: []account.Role{account.RoleConsumer, account.RoleMerchantAdmin},
		}, commands.ErrAmbiguousAccount)
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ambiguous)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		env := httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "AMBIGUOUS_ACCOUNT")
		s.Equal([]any{"CLIENTE", "ADMIN_EMPRESA"}, env.Data["accounts"])
		s.Equal(commands.ErrAmbiguousAccount.Error(), env.Message)
	})

	s.Run("error: malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not-an-object", "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_INPUT")
	})
}

// ================================================================================
// TestRegister
// ================================================================================

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := builder.NewAuthBuilder().BuildRegisterDTO()

	s.Run("success: 201 with the new consumer id", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody.ToDomain()).
			Return(&commands.RegisterResult{ConsumerID: 42}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var got resdto.RegisterResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(int64(42), got.ID)
		httptest.AssertSuccessMessage(s.T(), rec, "Cliente registrado. Revisa tu correo para verificar la cuenta.")
	})

	s.Run("error: email already registered", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, commands.ErrEmailTaken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "EMAIL_TAKEN")
	})

	s.Run("error: field over its max length never reaches the use case", func() {
		body := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("telefono", "012345678901234567890"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "INVALID_INPUT")
	})
}

// ================================================================================
// TestVerify
// ================================================================================

func (s *AuthHandlerTestSuite) TestVerify() {
	s.Run("success: first use", func() {
		s.mockCommands.EXPECT().Verify(gomock.Any(), "tok").Return(&commands.VerifyResult{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/verify?token=tok", nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertSuccessMessage(s.T(), rec, "Cuenta verificada correctamente")
	})

	s.Run("success: replayed token is not an error", func() {
		s.mockCommands.EXPECT().Verify(gomock.Any(), "tok").Return(&commands.VerifyResult{AlreadyVerified: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/verify?token=tok", nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertSuccessMessage(s.T(), rec, "Tu cuenta ya estaba verificada. Puedes iniciar sesión.")
	})

	s.Run("error: missing token", func() {
		s.mockCommands.EXPECT().Verify(gomock.Any(), "").Return(nil, commands.ErrVerificationTokenRequired)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/verify", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, commands.ErrVerificationTokenRequired.Error())
	})
}

// ================================================================================
// TestPasswordFlows
// ================================================================================

func (s *AuthHandlerTestSuite) TestForgotPassword() {
	s.Run("success: generic message", func() {
		s.mockCommands.EXPECT().ForgotPassword(gomock.Any(), "nadie@example.com").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/forgot-password",
			map[string]any{"email": "nadie@example.com"}, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertSuccessMessage(s.T(), rec, "Si el correo existe, se enviará un enlace de recuperación.")
	})
}

func (s *AuthHandlerTestSuite) TestResetPassword() {
	url := "/auth/reset-password"
	body := map[string]any{"token": "reset-tok", "newPassword": "nueva-clave-1"}

	s.Run("success", func() {
		s.mockCommands.EXPECT().ResetPassword(gomock.Any(), "reset-tok", "nueva-clave-1").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertSuccessMessage(s.T(), rec, "Contraseña actualizada")
	})

	s.Run("error: invalid reset token", func() {
		s.mockCommands.EXPECT().ResetPassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(commands.ErrResetTokenInvalid)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, "INVALID_RESET_TOKEN")
	})
}

func (s *AuthHandlerTestSuite) TestChangePassword() {
	url := "/auth/change-password"
	body := map[string]any{"currentPassword": builder.TestPassword, "newPassword": "nueva-clave-1"}
	consumer := builder.NewAccountBuilder().BuildIdentity()

	s.Run("success: passes the caller identity", func() {
		s.mockCommands.EXPECT().ChangePassword(gomock.Any(), consumer, builder.TestPassword, "nueva-clave-1").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, consumerToken)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: anonymous caller", func() {
		s.mockCommands.EXPECT().ChangePassword(gomock.Any(), (*shared.Identity)(nil), gomock.Any(), gomock.Any()).
			Return(shared.ErrUnauthenticated)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "No autenticado")
	})

	s.Run("error: wrong current password", func() {
		s.mockCommands.EXPECT().ChangePassword(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(commands.ErrCurrentPasswordIncorrect)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, consumerToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Contraseña actual incorrecta")
	})
}

// ================================================================================
// TestMe
// ================================================================================

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success", func() {
		employee := builder.NewAccountBuilder().AsEmployee(1).BuildIdentity()
		s.mockQueries.EXPECT().Me(gomock.Any(), employee).Return(&queries.AccountView{
			ID:          5,
			Role:        "EMPLEADO",
			Email:       "empleado@example.com",
			MerchantID:  ptr.To(int64(1)),
			DisplayName: "Ana Martínez",
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, employeeToken)

		var got resdto.MeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		want := resdto.MeResponse{
			ID:          5,
			Role:        "EMPLEADO",
			Email:       "empleado@example.com",
			MerchantID:  ptr.To(int64(1)),
			DisplayName: "Ana Martínez",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			s.T().Errorf("me response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: expired session surfaces as 401", func() {
		s.mockQueries.EXPECT().Me(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidSessionToken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, consumerToken)

		httptest.AssertErrorCode(s.T(), rec, http.StatusUnauthorized, "INVALID_TOKEN")
	})

	s.Run("error: account vanished", func() {
		s.mockQueries.EXPECT().Me(gomock.Any(), gomock.Any()).Return(nil, queries.ErrAccountNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, consumerToken)

		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})
}
