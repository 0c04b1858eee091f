package account

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

const PasswordMinLength = 8

var (
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrPasswordTooWeak   = errors.New("password must be at least 8 characters long")
	ErrInvalidNationalID = errors.New("invalid national id")
	ErrRequiredField     = errors.New("required field missing")
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Email struct {
	value string
}

// NormalizeEmail trims and lower-cases an address; stored emails are always normalized.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func NewEmail(s string) (Email, error) {
	s = NormalizeEmail(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if utf8.RuneCountInString(s) < PasswordMinLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// NationalID is the consumer's DUI ("12345678-9"), checked by employees at redemption.
type NationalID struct {
	value string
}

var nationalIDRegex = regexp.MustCompile(`^[0-9]{8}-?[0-9]$`)

func NewNationalID(s string) (NationalID, error) {
	s = strings.TrimSpace(s)
	if !nationalIDRegex.MatchString(s) {
		return NationalID{}, ErrInvalidNationalID
	}
	return NationalID{value: canonicalNationalID(s)}, nil
}

func (n NationalID) Value() string {
	return n.value
}

// Matches compares a presented id with the one on file, ignoring formatting.
func (n NationalID) Matches(presented string) bool {
	presented = strings.TrimSpace(presented)
	if presented == "" || n.value == "" {
		return false
	}
	return canonicalNationalID(presented) == n.value
}

func canonicalNationalID(s string) string {
	digits := strings.ReplaceAll(s, "-", "")
	if len(digits) != 9 {
		return s
	}
	return digits[:8] + "-" + digits[8:]
}

// Credentials is a login attempt. Password length is not checked on login.
type Credentials struct {
	email    string
	password string
}

func NewCredentials(email, password string) (Credentials, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return Credentials{}, ErrRequiredField
	}
	return Credentials{email: email, password: password}, nil
}

func (c Credentials) Email() string    { return c.email }
func (c Credentials) Password() string { return c.password }
