package request

import (
	"cuponx-backend/internal/domain/payment"
	"cuponx-backend/internal/usecase/commands"
)

// Shape rules for the card and the quantity bounds live in the purchase use case.
type CardRequest struct {
	Number string `json:"numero"`
	CVV    string `json:"cvv"`
	Holder string `json:"titular" binding:"max=120"`
	// MM/YY
	Expiry string `json:"vencimiento"`
}

type PurchaseRequest struct {
	OfferID  int64       `json:"oferta_id"`
	Quantity int         `json:"cantidad"`
	Card     CardRequest `json:"tarjeta"`
}

func (r *PurchaseRequest) ToInput() commands.PurchaseInput {
	return commands.PurchaseInput{
		OfferID:  r.OfferID,
		Quantity: r.Quantity,
		Card: payment.CardInput{
			Number: r.Card.Number,
			CVV:    r.Card.CVV,
			Holder: r.Card.Holder,
			Expiry: r.Card.Expiry,
		},
	}
}

type RedeemRequest struct {
	Code       string `json:"codigo"`
	NationalID string `json:"dui"`
}

func (r *RedeemRequest) ToInput() commands.RedeemInput {
	return commands.RedeemInput{
		Code:       r.Code,
		NationalID: r.NationalID,
	}
}

type LimitQuery struct {
	Limit *int `form:"limit"`
}

type LiveOffersQuery struct {
	CategoryID *int64 `form:"rubro_id" binding:"omitempty,min=1"`
	Search     string `form:"search" binding:"max=100"`
}
