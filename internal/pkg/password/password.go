package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrTooLong          = errors.New("password exceeds 72 bytes")
)

// DefaultCost is shared with the hashes seeded by migrations.
const DefaultCost = 10

// MaxBytes is the bcrypt input limit.
const MaxBytes = 72

func HashPassword(password string) (string, error) {
	switch {
	case password == "":
		return "", ErrInvalidPassword
	case len(password) > MaxBytes:
		return "", ErrTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}
	return string(hashed), nil
}

// ComparePassword returns ErrComparisonFailed on a mismatch and the bcrypt
// error for a malformed hash.
func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrComparisonFailed
	}
	return err
}
