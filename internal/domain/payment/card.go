package payment

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	ErrInvalidCardNumber = errors.New("card number must have 13 to 19 digits")
	ErrInvalidCVV        = errors.New("cvv must have 3 or 4 digits")
	ErrInvalidExpiry     = errors.New("card expiry must be MM/YY")
	ErrCardExpired       = errors.New("card has expired")
)

var (
	cardNumberRegex = regexp.MustCompile(`^[0-9]{13,19}$`)
	cvvRegex        = regexp.MustCompile(`^[0-9]{3,4}$`)
	expiryRegex     = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
)

// Card is a shape-checked payment stub. Nothing is charged.
type Card struct {
	last4  string
	holder string
}

type CardInput struct {
	Number string
	CVV    string
	Holder string
	// Expiry is optional, MM/YY
	Expiry string
}

func NewCard(in CardInput, now time.Time) (Card, error) {
	number := stripSpaces(in.Number)
	if !cardNumberRegex.MatchString(number) {
		return Card{}, ErrInvalidCardNumber
	}
	if !cvvRegex.MatchString(strings.TrimSpace(in.CVV)) {
		return Card{}, ErrInvalidCVV
	}
	if exp := strings.TrimSpace(in.Expiry); exp != "" {
		if err := checkExpiry(exp, now); err != nil {
			return Card{}, err
		}
	}
	return Card{last4: number[len(number)-4:], holder: strings.TrimSpace(in.Holder)}, nil
}

// checkExpiry accepts a card through the last day of its expiry month.
func checkExpiry(exp string, now time.Time) error {
	m := expiryRegex.FindStringSubmatch(exp)
	if m == nil {
		return ErrInvalidExpiry
	}
	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	firstOfNext := time.Date(2000+year, time.Month(month)+1, 1, 0, 0, 0, 0, now.Location())
	if !now.Before(firstOfNext) {
		return ErrCardExpired
	}
	return nil
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func (c Card) Last4() string  { return c.last4 }
func (c Card) Holder() string { return c.holder }
