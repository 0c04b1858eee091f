package shared

import "time"

type EventKind string

const (
	EventCouponsPurchased       EventKind = "coupons.purchased"
	EventCouponRedeemed         EventKind = "coupon.redeemed"
	EventAccountRegistered      EventKind = "account.registered"
	EventPasswordResetRequested EventKind = "account.password_reset_requested"
)

type Mail struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Event is a side effect of a committed command. Mail is optional.
type Event struct {
	Kind       EventKind
	OccurredAt time.Time
	Payload    map[string]any
	Mail       *Mail
}

// Notifier delivers events in the background. Delivery failures never reach the caller.
type Notifier interface {
	Notify(ev Event)
}
