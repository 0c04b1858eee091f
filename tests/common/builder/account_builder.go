//go:build unit || e2e

package builder

import (
	"sync"
	"time"

	"cuponx-backend/internal/domain/account"
	sqlc "cuponx-backend/internal/infra/sqlc/generated"
	"cuponx-backend/internal/pkg/password"
	"cuponx-backend/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

// TestPassword is the plain password behind DefaultPasswordHash.
const TestPassword = "password123"

var (
	hashOnce    sync.Once
	defaultHash string
)

// DefaultPasswordHash hashes TestPassword once per test binary.
func DefaultPasswordHash() string {
	hashOnce.Do(func() {
		h, err := password.HashPassword(TestPassword)
		if err != nil {
			panic(err)
		}
		defaultHash = h
	})
	return defaultHash
}

type AccountBuilder struct {
	ID           int64
	Role         account.Role
	Email        string
	PasswordHash string
	IsActive     bool
	FirstNames   string
	LastNames    string
	MerchantID   *int64
	Verified     bool
	NationalID   string
	VerifiedAt   *time.Time
}

// NewAccountBuilder returns an active, verified consumer.
func NewAccountBuilder() *AccountBuilder {
	verifiedAt := time.Now().Add(-24 * time.Hour)
	return &AccountBuilder{
		ID:           5,
		Role:         account.RoleConsumer,
		Email:        "cliente@example.com",
		PasswordHash: DefaultPasswordHash(),
		IsActive:     true,
		FirstNames:   "Ana",
		LastNames:    "Martínez",
		Verified:     true,
		NationalID:   "01234567-8",
		VerifiedAt:   &verifiedAt,
	}
}

func (b *AccountBuilder) With(mutate func(*AccountBuilder)) *AccountBuilder {
	mutate(b)
	return b
}

func (b *AccountBuilder) AsEmployee(merchantID int64) *AccountBuilder {
	b.Role = account.RoleEmployee
	b.Email = "empleado@example.com"
	b.MerchantID = &merchantID
	b.Verified = false
	b.NationalID = ""
	b.VerifiedAt = nil
	return b
}

func (b *AccountBuilder) AsMerchantAdmin() *AccountBuilder {
	b.Role = account.RoleMerchantAdmin
	b.Email = "empresa@example.com"
	b.MerchantID = nil
	b.Verified = false
	b.NationalID = ""
	b.VerifiedAt = nil
	return b
}

func (b *AccountBuilder) AsOperator() *AccountBuilder {
	b.Role = account.RoleOperator
	b.Email = "admin@example.com"
	b.MerchantID = nil
	b.Verified = false
	b.NationalID = ""
	b.VerifiedAt = nil
	return b
}

func (b *AccountBuilder) Unverified() *AccountBuilder {
	b.Verified = false
	b.VerifiedAt = nil
	return b
}

func (b *AccountBuilder) BuildSnapshot() account.Snapshot {
	return account.Snapshot{
		ID:           b.ID,
		Role:         b.Role,
		Email:        b.Email,
		PasswordHash: b.PasswordHash,
		Active:       b.IsActive,
		DisplayName:  b.FirstNames + " " + b.LastNames,
		MerchantID:   b.MerchantID,
		Verified:     b.Verified,
		NationalID:   b.NationalID,
		VerifiedAt:   b.VerifiedAt,
	}
}

func (b *AccountBuilder) BuildDomain() *account.Account {
	return account.Reconstruct(b.BuildSnapshot())
}

// BuildIdentity returns the session identity of the account.
func (b *AccountBuilder) BuildIdentity() *shared.Identity {
	a := b.BuildDomain()
	return &shared.Identity{
		AccountID:  a.ID(),
		Role:       a.Role(),
		Email:      a.Email(),
		MerchantID: a.MerchantID(),
	}
}

func (b *AccountBuilder) BuildConsumerRow() sqlc.Clientes {
	row := sqlc.Clientes{
		ID:           b.ID,
		Nombres:      b.FirstNames,
		Apellidos:    b.LastNames,
		Telefono:     "7777-8888",
		Correo:       b.Email,
		Direccion:    "San Salvador",
		Dui:          b.NationalID,
		PasswordHash: b.PasswordHash,
		Verificado:   b.Verified,
		Activo:       b.IsActive,
	}
	if b.VerifiedAt != nil {
		row.VerificadoAt = pgtype.Timestamptz{Time: *b.VerifiedAt, Valid: true}
	}
	return row
}

func (b *AccountBuilder) BuildEmployeeRow() sqlc.AdministradoresEmpresas {
	var merchantID int64
	if b.MerchantID != nil {
		merchantID = *b.MerchantID
	}
	return sqlc.AdministradoresEmpresas{
		ID:           b.ID,
		EmpresaID:    merchantID,
		Nombres:      b.FirstNames,
		Apellidos:    b.LastNames,
		Correo:       b.Email,
		PasswordHash: b.PasswordHash,
		Activo:       b.IsActive,
	}
}

func (b *AccountBuilder) BuildOperatorRow() sqlc.AdministradoresCuponx {
	return sqlc.AdministradoresCuponx{
		ID:           b.ID,
		Nombres:      b.FirstNames,
		Apellidos:    b.LastNames,
		Correo:       b.Email,
		PasswordHash: b.PasswordHash,
		Activo:       b.IsActive,
	}
}

func (b *AccountBuilder) BuildMerchantRow() sqlc.Empresas {
	return sqlc.Empresas{
		ID:           b.ID,
		Codigo:       "RES001",
		Nombre:       b.FirstNames + " " + b.LastNames,
		Direccion:    "San Salvador",
		Telefono:     "2222-3333",
		Correo:       b.Email,
		PasswordHash: b.PasswordHash,
		Activo:       b.IsActive,
	}
}

// RegistrationInputBuilder builds consumer sign-up input.
type RegistrationInputBuilder struct {
	Input account.RegistrationInput
}

func NewRegistrationInputBuilder() *RegistrationInputBuilder {
	return &RegistrationInputBuilder{Input: account.RegistrationInput{
		FirstNames: "Ana",
		LastNames:  "Martínez",
		Phone:      "7777-8888",
		Email:      "nuevo@example.com",
		Address:    "San Salvador",
		NationalID: "01234567-8",
		Password:   TestPassword,
	}}
}

func (b *RegistrationInputBuilder) With(mutate func(*account.RegistrationInput)) *RegistrationInputBuilder {
	mutate(&b.Input)
	return b
}

func (b *RegistrationInputBuilder) Build() account.RegistrationInput {
	return b.Input
}
