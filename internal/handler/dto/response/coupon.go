package response

import (
	"time"

	"cuponx-backend/internal/usecase/commands"
	"cuponx-backend/internal/usecase/queries"
)

type PurchaseResponse struct {
	OfferID     int64     `json:"oferta_id"`
	OfferTitle  string    `json:"oferta_titulo"`
	Quantity    int       `json:"cantidad"`
	Codes       []string  `json:"codigos"`
	UnitPrice   string    `json:"precio_unitario"`
	Total       string    `json:"total"`
	PurchasedAt time.Time `json:"fecha_compra"`
	CardLast4   string    `json:"tarjeta_ultimos4"`
}

func FromPurchaseResult(r *commands.PurchaseResult) *PurchaseResponse {
	return &PurchaseResponse{
		OfferID:     r.OfferID,
		OfferTitle:  r.OfferTitle,
		Quantity:    len(r.Codes),
		Codes:       r.Codes,
		UnitPrice:   r.UnitPrice.String(),
		Total:       r.Total.String(),
		PurchasedAt: r.PurchasedAt,
		CardLast4:   r.CardLast4,
	}
}

type RedeemResponse struct {
	Code         string    `json:"codigo"`
	RedeemedAt   time.Time `json:"fecha_canje"`
	OfferTitle   string    `json:"oferta_titulo"`
	ConsumerName string    `json:"cliente_nombre"`
}

func FromRedeemResult(r *commands.RedeemResult) *RedeemResponse {
	return &RedeemResponse{
		Code:         r.Code,
		RedeemedAt:   r.RedeemedAt,
		OfferTitle:   r.OfferTitle,
		ConsumerName: r.ConsumerName,
	}
}

type ConsumerCouponResponse struct {
	ID                 int64      `json:"id"`
	Code               string     `json:"codigo"`
	State              string     `json:"estado"`
	PricePaid          string     `json:"precio_pagado"`
	PurchasedAt        time.Time  `json:"fecha_compra"`
	RedeemedAt         *time.Time `json:"fecha_canje"`
	OfferTitle         string     `json:"oferta_titulo"`
	OfferDescription   string     `json:"oferta_descripcion"`
	RedemptionDeadline *time.Time `json:"fecha_limite_uso"`
	MerchantName       string     `json:"empresa_nombre"`
}

func FromConsumerCouponViews(views []*queries.ConsumerCouponView) ([]ConsumerCouponResponse, error) {
	res := make([]ConsumerCouponResponse, 0, len(views))
	if len(views) == 0 {
		return res, nil
	}
	if err := copyView(&res, views); err != nil {
		return nil, err
	}
	return res, nil
}
