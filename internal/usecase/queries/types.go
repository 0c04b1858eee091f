package queries

import (
	"time"

	"cuponx-backend/internal/domain/offer"
)

// OfferView is a live or approved offer as listed to shoppers.
type OfferView struct {
	ID                 int64
	Title              string
	Description        string
	RegularPrice       offer.Money
	OfferPrice         offer.Money
	DiscountPct        int
	StartDate          time.Time
	EndDate            time.Time
	RedemptionDeadline *time.Time
	Capacity           *int
	Remaining          *int // nil when uncapped
	Sold               int64
	ImageURL           *string
	MerchantID         int64
	MerchantName       string
	CategoryName       *string
}

type OfferFilter struct {
	CategoryID *int64
	Search     string
}

type CategoryView struct {
	ID          int64
	Name        string
	Description *string
}

type MerchantView struct {
	ID           int64
	Name         string
	Code         string
	ColorHex     *string
	Description  *string
	RewardPct    *int
	CategoryName *string
	Sold         *int64
}

type MerchantDetailView struct {
	MerchantView
	Address string
	Phone   string
	Email   string
}

type ConsumerCouponView struct {
	ID                 int64
	Code               string
	State              string
	PricePaid          offer.Money
	PurchasedAt        time.Time
	RedeemedAt         *time.Time
	OfferTitle         string
	OfferDescription   string
	RedemptionDeadline *time.Time
	MerchantName       string
}

type AccountView struct {
	ID          int64
	Role        string
	Email       string
	MerchantID  *int64
	DisplayName string
	Verified    *bool
}
