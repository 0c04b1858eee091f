//go:build unit || e2e

package builder

import (
	"time"

	"cuponx-backend/internal/domain/offer"
)

type OfferBuilder struct {
	ID                 int64
	MerchantID         int64
	MerchantCode       string
	MerchantName       string
	Title              string
	Description        string
	RegularPrice       offer.Money
	OfferPrice         offer.Money
	StartDate          time.Time
	EndDate            time.Time
	RedemptionDeadline *time.Time
	Capacity           *int
	Status             offer.Status
}

// NewOfferBuilder returns an approved, uncapped offer live around Today.
func NewOfferBuilder() *OfferBuilder {
	today := Today()
	deadline := today.AddDate(0, 1, 0)
	return &OfferBuilder{
		ID:                 1,
		MerchantID:         1,
		MerchantCode:       "RES001",
		MerchantName:       "Restaurante El Buen Sabor",
		Title:              "2x1 en pupusas",
		Description:        "Valido de lunes a jueves",
		RegularPrice:       2000,
		OfferPrice:         1000,
		StartDate:          today.AddDate(0, 0, -7),
		EndDate:            today.AddDate(0, 0, 7),
		RedemptionDeadline: &deadline,
		Status:             offer.StatusApproved,
	}
}

// Today is the calendar date used by builders, as UTC midnight.
func Today() time.Time {
	return offer.Day(time.Now(), time.UTC)
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) WithCapacity(c int) *OfferBuilder {
	b.Capacity = &c
	return b
}

func (b *OfferBuilder) params() offer.Params {
	return offer.Params{
		ID:                 b.ID,
		MerchantID:         b.MerchantID,
		MerchantCode:       b.MerchantCode,
		MerchantName:       b.MerchantName,
		Title:              b.Title,
		Description:        b.Description,
		RegularPrice:       b.RegularPrice,
		OfferPrice:         b.OfferPrice,
		StartDate:          b.StartDate,
		EndDate:            b.EndDate,
		RedemptionDeadline: b.RedemptionDeadline,
		Capacity:           b.Capacity,
		Status:             b.Status,
	}
}

func (b *OfferBuilder) BuildDomain() (*offer.Offer, error) {
	return offer.NewOffer(b.params())
}

// MustBuild skips validation, for states NewOffer would reject.
func (b *OfferBuilder) MustBuild() *offer.Offer {
	return offer.Reconstruct(b.params())
}
