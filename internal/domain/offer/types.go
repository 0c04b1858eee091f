package offer

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidStatus = errors.New("invalid offer status")

type Status string

const (
	StatusPending   Status = "en_espera"
	StatusApproved  Status = "aprobada"
	StatusRejected  Status = "rechazada"
	StatusDiscarded Status = "descartada"
)

func NewStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusApproved, StatusRejected, StatusDiscarded:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// Money is an amount in cents.
type Money int64

func (m Money) Cents() int64 {
	return int64(m)
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Day truncates t to its calendar date in loc, returned as UTC midnight so it
// compares directly with dates read from the store.
func Day(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
