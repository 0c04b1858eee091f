//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cuponx-backend/internal/domain/account"
	"cuponx-backend/internal/infra"
	sqlc "cuponx-backend/internal/infra/sqlc/generated"
	"cuponx-backend/internal/pkg/clock"
	"cuponx-backend/internal/pkg/errs"
	"cuponx-backend/internal/pkg/jwt"
	"cuponx-backend/internal/pkg/password"
	"cuponx-backend/internal/usecase/commands"
	"cuponx-backend/internal/usecase/queries"
	"cuponx-backend/internal/usecase/shared"
	"cuponx-backend/tests/common/builder"
	sharedmock "cuponx-backend/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// runWithin makes a mocked Within call fn with tx.
func runWithin(tx shared.Tx) func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
	return func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
		return fn(ctx, tx)
	}
}

func newTestJWTService() *jwt.Service {
	return jwt.NewService(jwt.Options{
		SessionSecret:   "session-secret",
		SessionDuration: 8 * time.Hour,
		ResetSecret:     "reset-secret",
		ResetDuration:   15 * time.Minute,
	})
}

type AuthCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUoW      *sharedmock.MockUnitOfWork
	mockTx       *sharedmock.MockTx
	mockReads    *sharedmock.MockCommandReads
	mockAccounts *sharedmock.MockAccountRepository
	mockNotifier *sharedmock.MockNotifier
	jwtService   *jwt.Service
	commands     commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockReads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.mockAccounts = sharedmock.NewMockAccountRepository(s.mockCtrl)
	s.mockNotifier = sharedmock.NewMockNotifier(s.mockCtrl)
	s.jwtService = newTestJWTService()

	s.mockUoW.EXPECT().CommandReads().Return(s.mockReads).AnyTimes()
	s.mockTx.EXPECT().Accounts().Return(s.mockAccounts).AnyTimes()
	s.mockTx.EXPECT().DB().Return(nil).AnyTimes()

	clk := clock.NewMockClock(time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC))
	s.commands = commands.NewAuthCommands(s.mockUoW, s.jwtService, s.mockNotifier, clk, "http://localhost:5173/")
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) expectWithin() {
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(runWithin(s.mockTx)).Times(1)
}

func (s *AuthCommandsTestSuite) TestLogin() {
	ctx := context.Background()

	s.Run("success: consumer receives a session token for its role", func() {
		consumer := builder.NewAccountBuilder().BuildDomain()
		s.mockReads.EXPECT().AccountsByEmail(gomock.Any(), "cliente@example.com").
			Return([]*account.Account{consumer}, nil).Times(1)

		result, err := s.commands.Login(ctx, "  Cliente@Example.com ", builder.TestPassword)

		s.Require().NoError(err)
		s.Equal(int64(5), result.User.ID)
		s.Equal(account.RoleConsumer, result.User.Role)
		s.Nil(result.User.MerchantID)
		s.Equal(8*time.Hour, result.ExpiresIn)

		claims, err := s.jwtService.ValidateSessionToken(result.Token)
		s.Require().NoError(err)
		s.Equal("CLIENTE", claims.Role)
		s.Equal(int64(5), claims.AccountID)
	})

	s.Run("success: employee token carries the merchant scope", func() {
		employee := builder.NewAccountBuilder().AsEmployee(3).BuildDomain()
		s.mockReads.EXPECT().AccountsByEmail(gomock.Any(), "empleado@example.com").
			Return([]*account.Account{employee}, nil).Times(1)

		result, err := s.commands.Login(ctx, "empleado@example.com", builder.TestPassword)

		s.Require().NoError(err)
		s.Require().NotNil(result.User.MerchantID)
		s.Equal(int64(3), *result.User.MerchantID)
		claims, err := s.jwtService.ValidateSessionToken(result.Token)
		s.Require().NoError(err)
		s.Require().NotNil(claims.MerchantID)
		s.Equal(int64(3), *claims.MerchantID)
	})

	s.Run("error: missing email or password", func() {
		_, err := s.commands.Login(ctx, "", builder.TestPassword)
		s.True(errs.Is(err, commands.ErrCredentialsRequired))

		_, err = s.commands.Login(ctx, "cliente@example.com", "")
		s.True(errs.Is(err, commands.ErrCredentialsRequired))
	})

	s.Run("error: unknown email is invalid credentials", func() {
		s.mockReads.EXPECT().AccountsByEmail(gomock.Any(), "nadie@example.com").Return(nil, nil).Times(1)

		_, err := s.commands.Login(ctx, "nadie@example.com", builder.TestPassword)
		s.True(errs.Is(err, commands.ErrInvalidCredentials))
	})

	s.Run("error: email shared by two variants is ambiguous and lists both roles", func() {
		consumer := builder.NewAccountBuilder().BuildDomain()
		merchant := builder.NewAccountBuilder().AsMerchantAdmin().With(func(b *builder.AccountBuilder) {
			b.Email = "cliente@example.com"
		}).BuildDomain()
		s.mockReads.EXPECT().AccountsByEmail(gomock.Any(), "cliente@example.com").
			Return([]*account.Account{consumer, merchant}, nil).Times(1)

		_, err := s.commands.Login(ctx, "cliente@example.com", builder.TestPassword)

		s.True(errs.Is(err, commands.ErrAmbiguousAccount))
		s.False(errs.Is(err, commands.ErrInvalidCredentials))
		var ambiguous *commands.AmbiguousAccountError
		s.Require().True(errs.As(err, &ambiguous))
		s.Equal([]account.Role{account.RoleConsumer, account.RoleMerchantAdmin}, ambiguous.Roles)
	})

	s.Run("error: wrong password", func() {
		consumer := builder.NewAccountBuilder().BuildDomain()
		s.mockReads.EXPECT().AccountsByEmail(gomock.Any(), gomock.Any()).
			Return([]*account.Account{consumer}, nil).Times(1)

		_, err := s.commands.Login(ctx, "cliente@example.com", "wrong-password")
		s.True(errs.Is(err, commands.ErrInvalidCredentials))
	})

	s.Run("error: inactive account looks like invalid credentials", func() {
		inactive := builder.NewAccountBuilder().With(func(b *builder.AccountBuilder) { b.IsActive = false }).BuildDomain()
		s.mockReads.EXPECT().AccountsByEmail(gomock.Any(), gomock.Any()).
			Return([]*account.Account{inactive}, nil).Times(1)

		_, err := s.commands.Login(ctx, "cliente@example.com", builder.TestPassword)
		s.True(errs.Is(err, commands.ErrInvalidCredentials))
	})

	s.Run("error: unverified consumer with the right password needs verification", func() {
		unverified := builder.NewAccountBuilder().Unverified().BuildDomain()
		s.mockReads.EXPECT().AccountsByEmail(gomock.Any(), gomock.Any()).
			Return([]*account.Account{unverified}, nil).Times(1)

		_, err := s.commands.Login(ctx, "cliente@example.com", builder.TestPassword)
		s.True(errs.Is(err, commands.ErrVerificationRequired))
	})

	s.Run("error: unverified consumer with a wrong password is invalid credentials", func() {
		unverified := builder.NewAccountBuilder().Unverified().BuildDomain()
		s.mockReads.EXPECT().AccountsByEmail(gomock.Any(), gomock.Any()).
			Return([]*account.Account{unverified}, nil).Times(1)

		_, err := s.commands.Login(ctx, "cliente@example.com", "wrong-password")
		s.True(errs.Is(err, commands.ErrInvalidCredentials))
	})

	s.Run("error: lookup failure is propagated", func() {
		dbErr := errors.New("connection refused")
		s.mockReads.EXPECT().AccountsByEmail(gomock.Any(), gomock.Any()).Return(nil, dbErr).Times(1)

		_, err := s.commands.Login(ctx, "cliente@example.com", builder.TestPassword)
		s.True(errs.Is(err, dbErr))
	})
}

func (s *AuthCommandsTestSuite) TestRegister() {
	ctx := context.Background()

	s.Run("success: creates an unverified consumer and mails the verification link", func() {
		in := builder.NewRegistrationInputBuilder().With(func(in *account.RegistrationInput) {
			in.Email = " Nuevo@Example.com "
		}).Build()

		s.mockReads.EXPECT().ConsumerTaken(gomock.Any(), "nuevo@example.com", "01234567-8").
			Return(shared.ConsumerTaken{}, nil).Times(1)
		s.expectWithin()
		var created *account.ConsumerRegistration
		s.mockAccounts.EXPECT().CreateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, reg *account.ConsumerRegistration) (int64, error) {
				created = reg
				return 42, nil
			}).Times(1)
		var sent shared.Event
		s.mockNotifier.EXPECT().Notify(gomock.Any()).Do(func(ev shared.Event) { sent = ev }).Times(1)

		result, err := s.commands.Register(ctx, in)

		s.Require().NoError(err)
		s.Equal(int64(42), result.ConsumerID)
		s.Require().NotNil(created)
		s.Equal("nuevo@example.com", created.Email().Value())
		s.Len(created.VerificationToken(), 64)
		s.NoError(password.ComparePassword(created.PasswordHash(), builder.TestPassword))

		s.Equal(shared.EventAccountRegistered, sent.Kind)
		s.Equal(int64(42), sent.Payload["cliente_id"])
		s.Require().NotNil(sent.Mail)
		s.Equal("nuevo@example.com", sent.Mail.To)
		s.Equal("Verifica tu cuenta - CuponX", sent.Mail.Subject)
		s.Contains(sent.Mail.Text, "http://localhost:5173/verify?token="+created.VerificationToken())
		s.Contains(sent.Mail.HTML, "Verificar cuenta")
	})

	s.Run("error: email already registered", func() {
		s.mockReads.EXPECT().ConsumerTaken(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(shared.ConsumerTaken{Email: true, NationalID: true}, nil).Times(1)

		_, err := s.commands.Register(ctx, builder.NewRegistrationInputBuilder().Build())
		s.True(errs.Is(err, commands.ErrEmailTaken))
	})

	s.Run("error: national id already registered", func() {
		s.mockReads.EXPECT().ConsumerTaken(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(shared.ConsumerTaken{NationalID: true}, nil).Times(1)

		_, err := s.commands.Register(ctx, builder.NewRegistrationInputBuilder().Build())
		s.True(errs.Is(err, commands.ErrNationalIDTaken))
	})

	s.Run("error: concurrent registration hits the unique index", func() {
		s.mockReads.EXPECT().ConsumerTaken(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(shared.ConsumerTaken{}, nil).Times(1)
		s.expectWithin()
		s.mockAccounts.EXPECT().CreateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("failed to create consumer", nil, infra.KindDuplicateKey)).Times(1)

		_, err := s.commands.Register(ctx, builder.NewRegistrationInputBuilder().Build())
		s.True(errs.Is(err, commands.ErrEmailTaken))
	})

	s.Run("error: invalid input never reaches the store", func() {
		testCases := []struct {
			name   string
			mutate func(*account.RegistrationInput)
			want   error
		}{
			{"missing first names", func(in *account.RegistrationInput) { in.FirstNames = " " }, commands.ErrRegistrationIncomplete},
			{"missing address", func(in *account.RegistrationInput) { in.Address = "" }, commands.ErrRegistrationIncomplete},
			{"malformed email", func(in *account.RegistrationInput) { in.Email = "no-at-sign" }, commands.ErrInvalidEmail},
			{"malformed national id", func(in *account.RegistrationInput) { in.NationalID = "1234" }, commands.ErrInvalidNationalID},
			{"short password", func(in *account.RegistrationInput) { in.Password = strings.Repeat("a", 7) }, commands.ErrPasswordTooShort},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				_, err := s.commands.Register(ctx, builder.NewRegistrationInputBuilder().With(tc.mutate).Build())
				s.True(errs.Is(err, tc.want), "got %v", err)
				s.True(errs.Is(err, errs.ErrInvalidInput))
			})
		}
	})
}

func (s *AuthCommandsTestSuite) TestVerify() {
	ctx := context.Background()

	s.Run("success: first use marks the consumer verified", func() {
		unverified := builder.NewAccountBuilder().Unverified().BuildDomain()
		s.mockReads.EXPECT().ConsumerByVerificationToken(gomock.Any(), "abc123").Return(unverified, nil).Times(1)
		s.expectWithin()
		s.mockAccounts.EXPECT().MarkVerified(gomock.Any(), gomock.Any(), int64(5)).Return(true, nil).Times(1)

		result, err := s.commands.Verify(ctx, " abc123 ")

		s.Require().NoError(err)
		s.False(result.AlreadyVerified)
	})

	s.Run("success: replay returns already verified without writing", func() {
		verified := builder.NewAccountBuilder().BuildDomain()
		s.mockReads.EXPECT().ConsumerByVerificationToken(gomock.Any(), "abc123").Return(verified, nil).Times(1)

		result, err := s.commands.Verify(ctx, "abc123")

		s.Require().NoError(err)
		s.True(result.AlreadyVerified)
	})

	s.Run("success: losing a concurrent verification still reports already verified", func() {
		unverified := builder.NewAccountBuilder().Unverified().BuildDomain()
		s.mockReads.EXPECT().ConsumerByVerificationToken(gomock.Any(), "abc123").Return(unverified, nil).Times(1)
		s.expectWithin()
		s.mockAccounts.EXPECT().MarkVerified(gomock.Any(), gomock.Any(), int64(5)).Return(false, nil).Times(1)

		result, err := s.commands.Verify(ctx, "abc123")

		s.Require().NoError(err)
		s.True(result.AlreadyVerified)
	})

	s.Run("error: empty token", func() {
		_, err := s.commands.Verify(ctx, "   ")
		s.True(errs.Is(err, commands.ErrVerificationTokenRequired))
	})

	s.Run("error: unknown token", func() {
		s.mockReads.EXPECT().ConsumerByVerificationToken(gomock.Any(), "nope").
			Return(nil, infra.WrapRepoErr("verification token not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.Verify(ctx, "nope")
		s.True(errs.Is(err, commands.ErrVerificationTokenInvalid))
	})
}

func (s *AuthCommandsTestSuite) TestForgotPassword() {
	ctx := context.Background()

	s.Run("success: single active match gets a reset link", func() {
		consumer := builder.NewAccountBuilder().BuildDomain()
		s.mockReads.EXPECT().AccountsByEmail(gomock.Any(), "cliente@example.com").
			Return([]*account.Account{consumer}, nil).Times(1)
		var sent shared.Event
		s.mockNotifier.EXPECT().Notify(gomock.Any()).Do(func(ev shared.Event) { sent = ev }).Times(1)

		err := s.commands.ForgotPassword(ctx, "Cliente@example.com")

		s.Require().NoError(err)
		s.Equal(shared.EventPasswordResetRequested, sent.Kind)
		s.Require().NotNil(sent.Mail)
		s.Equal("Recuperación de contraseña - CuponX", sent.Mail.Subject)

		const marker = "http://localhost:5173/reset-password?token="
		idx := strings.Index(sent.Mail.Text, marker)
		s.Require().GreaterOrEqual(idx, 0)
		token := sent.Mail.Text[idx+len(marker):]

		claims, err := s.jwtService.ValidateResetToken(token)
		s.Require().NoError(err)
		s.Equal(int64(5), claims.AccountID)
		_, err = s.jwtService.ValidateSessionToken(token)
		s.Error(err, "a reset token must not pass as a session token")
	})

	s.Run("success: unknown email answers the same and sends nothing", func() {
		s.mockReads.EXPECT().AccountsByEmail(gomock.Any(), "nadie@example.com").Return(nil, nil).Times(1)

		s.NoError(s.commands.ForgotPassword(ctx, "nadie@example.com"))
	})

	s.Run("success: ambiguous email sends nothing", func() {
		consumer := builder.NewAccountBuilder().BuildDomain()
		operator := builder.NewAccountBuilder().AsOperator().BuildDomain()
		s.mockReads.EXPECT().AccountsByEmail(gomock.Any(), gomock.Any()).
			Return([]*account.Account{consumer, operator}, nil).Times(1)

		s.NoError(s.commands.ForgotPassword(ctx, "cliente@example.com"))
	})

	s.Run("success: inactive account sends nothing", func() {
		inactive := builder.NewAccountBuilder().With(func(b *builder.AccountBuilder) { b.IsActive = false }).BuildDomain()
		s.mockReads.EXPECT().AccountsByEmail(gomock.Any(), gomock.Any()).
			Return([]*account.Account{inactive}, nil).Times(1)

		s.NoError(s.commands.ForgotPassword(ctx, "cliente@example.com"))
	})

	s.Run("error: empty email", func() {
		s.True(errs.Is(s.commands.ForgotPassword(ctx, " "), commands.ErrEmailRequired))
	})
}

func (s *AuthCommandsTestSuite) TestResetPassword() {
	ctx := context.Background()
	const newPassword = "nueva-clave-segura"

	s.Run("success: stores a hash of the new password for the token's account", func() {
		token, err := s.jwtService.GenerateResetToken(jwt.Subject{AccountID: 5, Role: account.RoleConsumer, Email: "cliente@example.com"})
		s.Require().NoError(err)

		s.expectWithin()
		var storedHash string
		s.mockAccounts.EXPECT().UpdatePassword(gomock.Any(), gomock.Any(), account.RoleConsumer, int64(5), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _ account.Role, _ int64, hash string) error {
				storedHash = hash
				return nil
			}).Times(1)

		s.Require().NoError(s.commands.ResetPassword(ctx, token, newPassword))
		s.NoError(password.ComparePassword(storedHash, newPassword))
	})

	s.Run("error: account vanished", func() {
		token, err := s.jwtService.GenerateResetToken(jwt.Subject{AccountID: 99, Role: account.RoleEmployee})
		s.Require().NoError(err)

		s.expectWithin()
		s.mockAccounts.EXPECT().UpdatePassword(gomock.Any(), gomock.Any(), account.RoleEmployee, int64(99), gomock.Any()).
			Return(infra.WrapRepoErr("account not found", nil, infra.KindNotFound)).Times(1)

		err = s.commands.ResetPassword(ctx, token, newPassword)
		s.True(errs.Is(err, queries.ErrAccountNotFound))
	})

	s.Run("error: session token is rejected", func() {
		token, err := s.jwtService.GenerateSessionToken(jwt.Subject{AccountID: 5, Role: account.RoleConsumer})
		s.Require().NoError(err)

		err = s.commands.ResetPassword(ctx, token, newPassword)
		s.True(errs.Is(err, commands.ErrResetTokenInvalid))
	})

	s.Run("error: garbage token", func() {
		err := s.commands.ResetPassword(ctx, "not-a-jwt", newPassword)
		s.True(errs.Is(err, commands.ErrResetTokenInvalid))
	})

	s.Run("error: missing fields and short password", func() {
		s.True(errs.Is(s.commands.ResetPassword(ctx, "", newPassword), commands.ErrResetFieldsRequired))
		s.True(errs.Is(s.commands.ResetPassword(ctx, "token", ""), commands.ErrResetFieldsRequired))
		s.True(errs.Is(s.commands.ResetPassword(ctx, "token", "corta"), commands.ErrPasswordTooShort))
	})
}

func (s *AuthCommandsTestSuite) TestChangePassword() {
	ctx := context.Background()
	b := builder.NewAccountBuilder().AsEmployee(3)
	actor := b.BuildIdentity()

	s.Run("success: current password matches", func() {
		s.mockReads.EXPECT().AccountByID(gomock.Any(), account.RoleEmployee, int64(5)).Return(b.BuildDomain(), nil).Times(1)
		s.expectWithin()
		s.mockAccounts.EXPECT().UpdatePassword(gomock.Any(), gomock.Any(), account.RoleEmployee, int64(5), gomock.Any()).
			Return(nil).Times(1)

		s.NoError(s.commands.ChangePassword(ctx, actor, builder.TestPassword, "otra-clave-123"))
	})

	s.Run("error: current password is wrong", func() {
		s.mockReads.EXPECT().AccountByID(gomock.Any(), account.RoleEmployee, int64(5)).Return(b.BuildDomain(), nil).Times(1)

		err := s.commands.ChangePassword(ctx, actor, "incorrecta", "otra-clave-123")
		s.True(errs.Is(err, commands.ErrCurrentPasswordIncorrect))
	})

	s.Run("error: unauthenticated", func() {
		err := s.commands.ChangePassword(ctx, nil, builder.TestPassword, "otra-clave-123")
		s.True(errs.Is(err, shared.ErrUnauthenticated))
	})

	s.Run("error: missing fields", func() {
		err := s.commands.ChangePassword(ctx, actor, "", "otra-clave-123")
		s.True(errs.Is(err, commands.ErrChangeFieldsRequired))
	})

	s.Run("error: new password too short", func() {
		err := s.commands.ChangePassword(ctx, actor, builder.TestPassword, "corta")
		s.True(errs.Is(err, commands.ErrPasswordTooShort))
	})
}
