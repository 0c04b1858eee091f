package coupon

import (
	"errors"
	"time"

	"cuponx-backend/internal/domain/account"
	"cuponx-backend/internal/domain/offer"
)

var (
	ErrAlreadyRedeemed    = errors.New("coupon already redeemed")
	ErrCouponExpired      = errors.New("coupon has expired")
	ErrNationalIDMismatch = errors.New("national id does not match coupon owner")
	ErrWrongMerchant      = errors.New("coupon belongs to another merchant")
)

type Coupon struct {
	id          int64
	code        Code
	consumerID  int64
	offerID     int64
	merchantID  int64
	pricePaid   offer.Money
	purchasedAt time.Time
	state       State
	redeemedAt  *time.Time
	redeemedBy  *int64

	// read along with the row for redemption
	ownerNationalID    account.NationalID
	redemptionDeadline *time.Time
}

// Issue creates an available coupon for one purchased unit at the offer's current price.
func Issue(code Code, consumerID int64, o *offer.Offer, now time.Time) *Coupon {
	return &Coupon{
		code:               code,
		consumerID:         consumerID,
		offerID:            o.ID(),
		merchantID:         o.MerchantID(),
		pricePaid:          o.OfferPrice(),
		purchasedAt:        now,
		state:              StateAvailable,
		redemptionDeadline: o.RedemptionDeadline(),
	}
}

type Snapshot struct {
	ID                 int64
	Code               string
	ConsumerID         int64
	OfferID            int64
	MerchantID         int64
	PricePaid          offer.Money
	PurchasedAt        time.Time
	State              State
	RedeemedAt         *time.Time
	RedeemedBy         *int64
	OwnerNationalID    string
	RedemptionDeadline *time.Time
}

func Reconstruct(s Snapshot) *Coupon {
	nid, _ := account.NewNationalID(s.OwnerNationalID)
	return &Coupon{
		id:                 s.ID,
		code:               Code(s.Code),
		consumerID:         s.ConsumerID,
		offerID:            s.OfferID,
		merchantID:         s.MerchantID,
		pricePaid:          s.PricePaid,
		purchasedAt:        s.PurchasedAt,
		state:              s.State,
		redeemedAt:         s.RedeemedAt,
		redeemedBy:         s.RedeemedBy,
		ownerNationalID:    nid,
		redemptionDeadline: s.RedemptionDeadline,
	}
}

// CheckMerchant fails unless the coupon's offer belongs to merchantID.
func (c *Coupon) CheckMerchant(merchantID int64) error {
	if c.merchantID != merchantID {
		return ErrWrongMerchant
	}
	return nil
}

// ExpireIfDue moves an available coupon past its deadline to expired.
// It reports whether the state changed. today is a calendar date.
func (c *Coupon) ExpireIfDue(today time.Time) bool {
	if c.state != StateAvailable || c.redemptionDeadline == nil {
		return false
	}
	if !today.After(*c.redemptionDeadline) {
		return false
	}
	c.state = StateExpired
	return true
}

// Redeem performs available -> redeemed. Callers run ExpireIfDue first.
func (c *Coupon) Redeem(presentedNationalID string, employeeID int64, now time.Time) error {
	switch c.state {
	case StateRedeemed:
		return ErrAlreadyRedeemed
	case StateExpired:
		return ErrCouponExpired
	}
	if !c.ownerNationalID.Matches(presentedNationalID) {
		return ErrNationalIDMismatch
	}
	c.state = StateRedeemed
	c.redeemedAt = &now
	c.redeemedBy = &employeeID
	return nil
}

func (c *Coupon) ID() int64                      { return c.id }
func (c *Coupon) Code() Code                     { return c.code }
func (c *Coupon) ConsumerID() int64              { return c.consumerID }
func (c *Coupon) OfferID() int64                 { return c.offerID }
func (c *Coupon) MerchantID() int64              { return c.merchantID }
func (c *Coupon) PricePaid() offer.Money         { return c.pricePaid }
func (c *Coupon) PurchasedAt() time.Time         { return c.purchasedAt }
func (c *Coupon) State() State                   { return c.state }
func (c *Coupon) RedeemedAt() *time.Time         { return c.redeemedAt }
func (c *Coupon) RedeemedBy() *int64             { return c.redeemedBy }
func (c *Coupon) RedemptionDeadline() *time.Time { return c.redemptionDeadline }
