package account

import (
	"errors"
	"time"
)

var (
	ErrAccountInactive      = errors.New("account inactive")
	ErrVerificationRequired = errors.New("account not verified")
)

// Account is the shape shared by the four variants. Variant-specific fields are
// zero for the variants that do not carry them.
type Account struct {
	id           int64
	role         Role
	email        string
	passwordHash string
	active       bool
	displayName  string

	// employee: owning merchant; merchant-admin: the merchant itself
	merchantID *int64

	// consumer only
	verified   bool
	nationalID NationalID
	verifiedAt *time.Time
}

type Snapshot struct {
	ID           int64
	Role         Role
	Email        string
	PasswordHash string
	Active       bool
	DisplayName  string
	MerchantID   *int64
	Verified     bool
	NationalID   string
	VerifiedAt   *time.Time
}

func Reconstruct(s Snapshot) *Account {
	a := &Account{
		id:           s.ID,
		role:         s.Role,
		email:        NormalizeEmail(s.Email),
		passwordHash: s.PasswordHash,
		active:       s.Active,
		displayName:  s.DisplayName,
		merchantID:   s.MerchantID,
		verified:     s.Verified,
		nationalID:   NationalID{value: canonicalNationalID(s.NationalID)},
		verifiedAt:   s.VerifiedAt,
	}
	if s.Role == RoleMerchantAdmin && a.merchantID == nil {
		id := s.ID
		a.merchantID = &id
	}
	return a
}

// CheckCanSignIn applies the account-state rules that follow a successful password check.
func (a *Account) CheckCanSignIn() error {
	if !a.active {
		return ErrAccountInactive
	}
	if a.role == RoleConsumer && !a.verified {
		return ErrVerificationRequired
	}
	return nil
}

func (a *Account) ID() int64              { return a.id }
func (a *Account) Role() Role             { return a.role }
func (a *Account) Email() string          { return a.email }
func (a *Account) PasswordHash() string   { return a.passwordHash }
func (a *Account) IsActive() bool         { return a.active }
func (a *Account) DisplayName() string    { return a.displayName }
func (a *Account) MerchantID() *int64     { return a.merchantID }
func (a *Account) IsVerified() bool       { return a.verified }
func (a *Account) NationalID() NationalID { return a.nationalID }
func (a *Account) VerifiedAt() *time.Time { return a.verifiedAt }
