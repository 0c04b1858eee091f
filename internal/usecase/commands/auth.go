package commands

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"cuponx-backend/internal/domain/account"
	"cuponx-backend/internal/infra"
	"cuponx-backend/internal/pkg/clock"
	"cuponx-backend/internal/pkg/errs"
	"cuponx-backend/internal/pkg/jwt"
	"cuponx-backend/internal/pkg/password"
	"cuponx-backend/internal/usecase/queries"
	"cuponx-backend/internal/usecase/shared"
)

var (
	ErrCredentialsRequired  = errs.Class(errs.ErrInvalidInput, "Email y contraseña son requeridos")
	ErrInvalidCredentials   = errs.Class(errs.ErrUnauthenticated, "Credenciales inválidas")
	ErrAmbiguousAccount     = errs.Class(errs.ErrConflict, "El correo está asociado a múltiples cuentas. Define un correo único por tipo de usuario.")
	ErrVerificationRequired = errs.Class(errs.ErrForbidden, "Cuenta no verificada")
	ErrTokenGeneration      = errs.Class(errs.ErrInternal, "No se pudo generar el token")

	ErrRegistrationIncomplete = errs.Class(errs.ErrInvalidInput, "Todos los campos son requeridos")
	ErrInvalidEmail           = errs.Class(errs.ErrInvalidInput, "Correo electrónico inválido")
	ErrInvalidNationalID      = errs.Class(errs.ErrInvalidInput, "DUI inválido, use el formato 12345678-9")
	ErrPasswordTooShort       = errs.Class(errs.ErrInvalidInput, "La contraseña debe tener al menos 8 caracteres")
	ErrEmailTaken             = errs.Class(errs.ErrConflict, "El correo ya está registrado")
	ErrNationalIDTaken        = errs.Class(errs.ErrConflict, "El DUI ya está registrado")

	ErrVerificationTokenRequired = errs.Class(errs.ErrInvalidInput, "Token requerido")
	ErrVerificationTokenInvalid  = errs.Class(errs.ErrInvalidInput, "Token inválido o ya utilizado")

	ErrEmailRequired            = errs.Class(errs.ErrInvalidInput, "Email requerido")
	ErrResetFieldsRequired      = errs.Class(errs.ErrInvalidInput, "Token y nueva contraseña son requeridos")
	ErrResetTokenInvalid        = errs.Class(errs.ErrUnauthenticated, "Enlace de recuperación inválido o expirado")
	ErrChangeFieldsRequired     = errs.Class(errs.ErrInvalidInput, "Contraseña actual y nueva son requeridas")
	ErrCurrentPasswordIncorrect = errs.Class(errs.ErrUnauthenticated, "Contraseña actual incorrecta")
)

// AmbiguousAccountError lists the variants sharing the email. It is marked with ErrAmbiguousAccount.
type AmbiguousAccountError struct {
	Roles []account.Role
}

func (e *AmbiguousAccountError) Error() string {
	return ErrAmbiguousAccount.Error()
}

func newAmbiguousAccountError(accounts []*account.Account) error {
	roles := make([]account.Role, len(accounts))
	for i, a := range accounts {
		roles[i] = a.Role()
	}
	return errs.Mark(&AmbiguousAccountError{Roles: roles}, ErrAmbiguousAccount)
}

type SessionUser struct {
	ID         int64
	Role       account.Role
	Email      string
	MerchantID *int64
}

type LoginResult struct {
	Token     string
	ExpiresIn time.Duration
	User      SessionUser
}

type RegisterResult struct {
	ConsumerID int64
}

type VerifyResult struct {
	AlreadyVerified bool
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	Register(ctx context.Context, in account.RegistrationInput) (*RegisterResult, error)
	Verify(ctx context.Context, token string) (*VerifyResult, error)
	// ForgotPassword never reports whether the email exists.
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	ChangePassword(ctx context.Context, actor *shared.Identity, currentPassword, newPassword string) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	notifier   shared.Notifier
	clock      clock.Clock
	publicURL  string
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	jwtService *jwt.Service,
	notifier shared.Notifier,
	clk clock.Clock,
	publicURL string,
) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		notifier:   notifier,
		clock:      clk,
		publicURL:  strings.TrimRight(publicURL, "/"),
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	credentials, err := account.NewCredentials(email, plainPassword)
	if err != nil {
		return nil, ErrCredentialsRequired
	}

	accounts, err := a.uow.CommandReads().AccountsByEmail(ctx, credentials.Email())
	if err != nil {
		return nil, errs.Wrap(err, "lookup accounts by email")
	}
	switch len(accounts) {
	case 0:
		return nil, ErrInvalidCredentials
	case 1:
	default:
		return nil, newAmbiguousAccountError(accounts)
	}

	acc := accounts[0]
	// Same error as a password mismatch to prevent account enumeration
	if !acc.IsActive() {
		return nil, ErrInvalidCredentials
	}
	if err := password.ComparePassword(acc.PasswordHash(), credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := acc.CheckCanSignIn(); err != nil {
		if errs.Is(err, account.ErrVerificationRequired) {
			return nil, ErrVerificationRequired
		}
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateSessionToken(jwt.Subject{
		AccountID:  acc.ID(),
		Role:       acc.Role(),
		Email:      acc.Email(),
		MerchantID: acc.MerchantID(),
	})
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Token:     token,
		ExpiresIn: a.jwtService.SessionDuration(),
		User: SessionUser{
			ID:         acc.ID(),
			Role:       acc.Role(),
			Email:      acc.Email(),
			MerchantID: acc.MerchantID(),
		},
	}, nil
}

func (a *authCommandsImpl) Register(ctx context.Context, in account.RegistrationInput) (*RegisterResult, error) {
	email, nationalID, pw, err := in.Validate()
	if err != nil {
		return nil, registrationError(err)
	}

	taken, err := a.uow.CommandReads().ConsumerTaken(ctx, email.Value(), nationalID.Value())
	if err != nil {
		return nil, errs.Wrap(err, "check consumer uniqueness")
	}
	if taken.Email {
		return nil, ErrEmailTaken
	}
	if taken.NationalID {
		return nil, ErrNationalIDTaken
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}
	token, err := newVerificationToken()
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	reg, err := account.NewConsumerRegistration(in, hash, token)
	if err != nil {
		return nil, registrationError(err)
	}

	var consumerID int64
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var createErr error
		consumerID, createErr = tx.Accounts().CreateConsumer(ctx, tx.DB(), reg)
		return createErr
	})
	if err != nil {
		// lost a race with a concurrent registration
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Wrap(err, "create consumer")
	}

	a.notifier.Notify(shared.Event{
		Kind:       shared.EventAccountRegistered,
		OccurredAt: a.clock.Now(),
		Payload: map[string]any{
			"cliente_id": consumerID,
			"correo":     reg.Email().Value(),
		},
		Mail: verificationMail(reg.Email().Value(), a.publicURL+"/verify?token="+token),
	})

	return &RegisterResult{ConsumerID: consumerID}, nil
}

func (a *authCommandsImpl) Verify(ctx context.Context, token string) (*VerifyResult, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrVerificationTokenRequired
	}

	consumer, err := a.uow.CommandReads().ConsumerByVerificationToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVerificationTokenInvalid
		}
		return nil, errs.Wrap(err, "lookup verification token")
	}
	if consumer.IsVerified() {
		return &VerifyResult{AlreadyVerified: true}, nil
	}

	var changed bool
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var markErr error
		changed, markErr = tx.Accounts().MarkVerified(ctx, tx.DB(), consumer.ID())
		return markErr
	})
	if err != nil {
		return nil, errs.Wrap(err, "mark consumer verified")
	}

	return &VerifyResult{AlreadyVerified: !changed}, nil
}

func (a *authCommandsImpl) ForgotPassword(ctx context.Context, email string) error {
	email = account.NormalizeEmail(email)
	if email == "" {
		return ErrEmailRequired
	}

	accounts, err := a.uow.CommandReads().AccountsByEmail(ctx, email)
	if err != nil {
		return errs.Wrap(err, "lookup accounts by email")
	}
	if len(accounts) != 1 {
		if len(accounts) > 1 {
			slog.Info("password reset skipped for ambiguous email", "accounts", len(accounts))
		}
		return nil
	}
	acc := accounts[0]
	if !acc.IsActive() {
		return nil
	}

	token, err := a.jwtService.GenerateResetToken(jwt.Subject{
		AccountID: acc.ID(),
		Role:      acc.Role(),
		Email:     acc.Email(),
	})
	if err != nil {
		return errs.Mark(err, ErrTokenGeneration)
	}

	a.notifier.Notify(shared.Event{
		Kind:       shared.EventPasswordResetRequested,
		OccurredAt: a.clock.Now(),
		Payload: map[string]any{
			"account_id": acc.ID(),
			"role":       acc.Role().String(),
		},
		Mail: resetMail(acc.Email(), a.publicURL+"/reset-password?token="+token),
	})
	return nil
}

func (a *authCommandsImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	token = strings.TrimSpace(token)
	if token == "" || newPassword == "" {
		return ErrResetFieldsRequired
	}
	pw, err := account.NewPassword(newPassword)
	if err != nil {
		return ErrPasswordTooShort
	}

	claims, err := a.jwtService.ValidateResetToken(token)
	if err != nil {
		return errs.Mark(err, ErrResetTokenInvalid)
	}
	role, err := account.NewRole(claims.Role)
	if err != nil {
		return errs.Mark(err, ErrResetTokenInvalid)
	}

	return a.updatePassword(ctx, role, claims.AccountID, pw)
}

func (a *authCommandsImpl) ChangePassword(ctx context.Context, actor *shared.Identity, currentPassword, newPassword string) error {
	if actor == nil {
		return shared.ErrUnauthenticated
	}
	if currentPassword == "" || newPassword == "" {
		return ErrChangeFieldsRequired
	}
	pw, err := account.NewPassword(newPassword)
	if err != nil {
		return ErrPasswordTooShort
	}

	acc, err := a.uow.CommandReads().AccountByID(ctx, actor.Role, actor.AccountID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return queries.ErrAccountNotFound
		}
		return errs.Wrap(err, "lookup account")
	}
	if err := password.ComparePassword(acc.PasswordHash(), currentPassword); err != nil {
		return ErrCurrentPasswordIncorrect
	}

	return a.updatePassword(ctx, acc.Role(), acc.ID(), pw)
}

func (a *authCommandsImpl) updatePassword(ctx context.Context, role account.Role, id int64, pw account.Password) error {
	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return errs.Wrap(err, "hash password")
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Accounts().UpdatePassword(ctx, tx.DB(), role, id, hash)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return queries.ErrAccountNotFound
		}
		return errs.Wrap(err, "update password")
	}
	return nil
}

func registrationError(err error) error {
	switch {
	case errs.Is(err, account.ErrRequiredField):
		return ErrRegistrationIncomplete
	case errs.Is(err, account.ErrInvalidEmail):
		return ErrInvalidEmail
	case errs.Is(err, account.ErrInvalidNationalID):
		return ErrInvalidNationalID
	case errs.Is(err, account.ErrPasswordTooWeak):
		return ErrPasswordTooShort
	default:
		return errs.Mark(err, errs.ErrInvalidInput)
	}
}

// newVerificationToken returns 32 random bytes, hex encoded.
func newVerificationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
