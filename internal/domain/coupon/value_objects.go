package coupon

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode   = errors.New("invalid coupon code format")
	ErrInvalidState        = errors.New("invalid coupon state")
	ErrInvalidMerchantCode = errors.New("invalid merchant code")
)

type State string

const (
	StateAvailable State = "disponible"
	StateRedeemed  State = "canjeado"
	StateExpired   State = "vencido"
)

func NewState(s string) (State, error) {
	st := State(s)
	switch st {
	case StateAvailable, StateRedeemed, StateExpired:
		return st, nil
	default:
		return "", ErrInvalidState
	}
}

func (s State) String() string {
	return string(s)
}

const codeDigits = 7

var (
	couponCodeRegex   = regexp.MustCompile(`^[A-Z0-9]{4,32}$`)
	merchantCodeRegex = regexp.MustCompile(`^[A-Z0-9]{2,16}$`)
)

type Code string

func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// CodeGenerator produces candidate codes. Uniqueness is enforced by the ledger.
type CodeGenerator interface {
	Generate(merchantCode string) (Code, error)
}

// RandomCodeGenerator builds codes of the form <merchant code><7 digits>.
type RandomCodeGenerator struct{}

func NewRandomCodeGenerator() *RandomCodeGenerator {
	return &RandomCodeGenerator{}
}

func (g *RandomCodeGenerator) Generate(merchantCode string) (Code, error) {
	prefix := strings.ToUpper(strings.TrimSpace(merchantCode))
	if !merchantCodeRegex.MatchString(prefix) {
		return "", ErrInvalidMerchantCode
	}
	n, err := rand.Int(rand.Reader, big.NewInt(10_000_000))
	if err != nil {
		return "", fmt.Errorf("generate coupon code: %w", err)
	}
	return Code(fmt.Sprintf("%s%0*d", prefix, codeDigits, n.Int64())), nil
}
