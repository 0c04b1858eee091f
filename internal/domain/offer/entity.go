package offer

import (
	"errors"
	"math"
	"strings"
	"time"
)

var (
	ErrTitleRequired      = errors.New("offer title is required")
	ErrInvalidPrice       = errors.New("offer prices must be positive")
	ErrPriceAboveRegular  = errors.New("offer price cannot exceed regular price")
	ErrInvalidWindow      = errors.New("offer window ends before it starts")
	ErrInvalidDeadline    = errors.New("redemption deadline precedes offer start")
	ErrInvalidCap         = errors.New("inventory cap must be positive")
	ErrOfferNotApproved   = errors.New("offer is not approved")
	ErrOfferOutsideWindow = errors.New("offer is outside its validity window")
	ErrCapacityExceeded   = errors.New("offer capacity exceeded")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
)

type Offer struct {
	id                 int64
	merchantID         int64
	merchantCode       string
	merchantName       string
	title              string
	description        string
	regularPrice       Money
	offerPrice         Money
	startDate          time.Time
	endDate            time.Time
	redemptionDeadline *time.Time
	capacity           *int
	status             Status
}

type Params struct {
	ID                 int64
	MerchantID         int64
	MerchantCode       string
	MerchantName       string
	Title              string
	Description        string
	RegularPrice       Money
	OfferPrice         Money
	StartDate          time.Time
	EndDate            time.Time
	RedemptionDeadline *time.Time
	Capacity           *int
	Status             Status
}

// NewOffer validates p. Dates are compared as calendar days.
func NewOffer(p Params) (*Offer, error) {
	if strings.TrimSpace(p.Title) == "" {
		return nil, ErrTitleRequired
	}
	if p.RegularPrice <= 0 || p.OfferPrice <= 0 {
		return nil, ErrInvalidPrice
	}
	if p.OfferPrice > p.RegularPrice {
		return nil, ErrPriceAboveRegular
	}
	if p.EndDate.Before(p.StartDate) {
		return nil, ErrInvalidWindow
	}
	if p.RedemptionDeadline != nil && p.RedemptionDeadline.Before(p.StartDate) {
		return nil, ErrInvalidDeadline
	}
	if p.Capacity != nil && *p.Capacity <= 0 {
		return nil, ErrInvalidCap
	}
	if p.Status == "" {
		p.Status = StatusPending
	}
	if _, err := NewStatus(string(p.Status)); err != nil {
		return nil, err
	}
	return Reconstruct(p), nil
}

// Reconstruct rebuilds an offer from storage without validation.
func Reconstruct(p Params) *Offer {
	return &Offer{
		id:                 p.ID,
		merchantID:         p.MerchantID,
		merchantCode:       p.MerchantCode,
		merchantName:       p.MerchantName,
		title:              p.Title,
		description:        p.Description,
		regularPrice:       p.RegularPrice,
		offerPrice:         p.OfferPrice,
		startDate:          p.StartDate,
		endDate:            p.EndDate,
		redemptionDeadline: p.RedemptionDeadline,
		capacity:           p.Capacity,
		status:             p.Status,
	}
}

// IsLive reports whether the offer is approved and today falls inside its window.
func (o *Offer) IsLive(today time.Time) bool {
	return o.CheckPurchasable(today) == nil
}

func (o *Offer) CheckPurchasable(today time.Time) error {
	if o.status != StatusApproved {
		return ErrOfferNotApproved
	}
	if today.Before(o.startDate) || today.After(o.endDate) {
		return ErrOfferOutsideWindow
	}
	return nil
}

// Remaining returns the units left under the cap. ok is false for uncapped offers.
func (o *Offer) Remaining(issued int) (remaining int, ok bool) {
	if o.capacity == nil {
		return 0, false
	}
	remaining = *o.capacity - issued
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// ReserveUnits checks that requested more units fit under the cap given the
// number already issued. It returns the units that were left before the check.
func (o *Offer) ReserveUnits(issued, requested int) (int, error) {
	if requested <= 0 {
		return 0, ErrInvalidQuantity
	}
	remaining, capped := o.Remaining(issued)
	if !capped {
		return math.MaxInt, nil
	}
	if requested > remaining {
		return remaining, ErrCapacityExceeded
	}
	return remaining, nil
}

// IsRedeemableOn reports whether a coupon of this offer can still be used on day.
// The deadline is inclusive.
func (o *Offer) IsRedeemableOn(day time.Time) bool {
	return o.redemptionDeadline == nil || !day.After(*o.redemptionDeadline)
}

// DiscountPct is the rounded percentage saved against the regular price.
func (o *Offer) DiscountPct() int {
	return DiscountPct(o.regularPrice, o.offerPrice)
}

func DiscountPct(regular, price Money) int {
	if regular <= 0 {
		return 0
	}
	return int(math.Round((1 - float64(price)/float64(regular)) * 100))
}

func (o *Offer) ID() int64                      { return o.id }
func (o *Offer) MerchantID() int64              { return o.merchantID }
func (o *Offer) MerchantCode() string           { return o.merchantCode }
func (o *Offer) MerchantName() string           { return o.merchantName }
func (o *Offer) Title() string                  { return o.title }
func (o *Offer) Description() string            { return o.description }
func (o *Offer) RegularPrice() Money            { return o.regularPrice }
func (o *Offer) OfferPrice() Money              { return o.offerPrice }
func (o *Offer) StartDate() time.Time           { return o.startDate }
func (o *Offer) EndDate() time.Time             { return o.endDate }
func (o *Offer) RedemptionDeadline() *time.Time { return o.redemptionDeadline }
func (o *Offer) Capacity() *int                 { return o.capacity }
func (o *Offer) Status() Status                 { return o.status }
