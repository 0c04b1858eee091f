//go:build unit || e2e

package builder

import (
	reqdto "cuponx-backend/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "cliente@example.com",
		Password: TestPassword,
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	in := NewRegistrationInputBuilder().Build()
	return reqdto.RegisterRequest{
		FirstNames: in.FirstNames,
		LastNames:  in.LastNames,
		Phone:      in.Phone,
		Email:      a.Email,
		Address:    in.Address,
		NationalID: in.NationalID,
		Password:   a.Password,
	}
}

type PurchaseRequestBuilder struct {
	OfferID  int64
	Quantity int
	Card     reqdto.CardRequest
}

func NewPurchaseRequestBuilder() *PurchaseRequestBuilder {
	return &PurchaseRequestBuilder{
		OfferID:  1,
		Quantity: 1,
		Card: reqdto.CardRequest{
			Number: "4111 1111 1111 1111",
			CVV:    "123",
			Holder: "Ana Martínez",
			Expiry: "12/39",
		},
	}
}

func (b *PurchaseRequestBuilder) With(mutate func(*PurchaseRequestBuilder)) *PurchaseRequestBuilder {
	mutate(b)
	return b
}

func (b *PurchaseRequestBuilder) BuildDTO() reqdto.PurchaseRequest {
	return reqdto.PurchaseRequest{
		OfferID:  b.OfferID,
		Quantity: b.Quantity,
		Card:     b.Card,
	}
}

func (b *CouponBuilder) BuildRedeemDTO() reqdto.RedeemRequest {
	return reqdto.RedeemRequest{
		Code:       b.Code,
		NationalID: b.OwnerNationalID,
	}
}
