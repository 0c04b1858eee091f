package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"cuponx-backend/internal/domain/account"
	"cuponx-backend/internal/domain/coupon"
	"cuponx-backend/internal/domain/offer"
	"cuponx-backend/internal/domain/payment"
	"cuponx-backend/internal/infra"
	"cuponx-backend/internal/pkg/clock"
	"cuponx-backend/internal/pkg/errs"
	"cuponx-backend/internal/usecase/shared"
)

const (
	MinPurchaseQuantity = 1
	MaxPurchaseQuantity = 20

	// per unit, before the purchase fails as internal
	maxCodeAttempts = 5
)

var (
	ErrInvalidOfferID    = errs.Class(errs.ErrInvalidInput, "ID de oferta inválido")
	ErrInvalidQuantity   = errs.Class(errs.ErrInvalidInput, "La cantidad debe estar entre 1 y 20")
	ErrInvalidCardNumber = errs.Class(errs.ErrInvalidInput, "Número de tarjeta inválido")
	ErrInvalidCVV        = errs.Class(errs.ErrInvalidInput, "CVV inválido")
	ErrInvalidCardExpiry = errs.Class(errs.ErrInvalidInput, "Fecha de vencimiento de tarjeta inválida")
	ErrCardExpired       = errs.Class(errs.ErrInvalidInput, "La tarjeta está vencida")
	ErrOfferNotFound     = errs.Class(errs.ErrNotFound, "Oferta no encontrada")
	ErrOfferNotAvailable = errs.Class(errs.ErrBusinessRule, "La oferta no está disponible para la venta")
	ErrCapacityExceeded  = errs.Class(errs.ErrBusinessRule, "No hay suficientes cupones disponibles para esta oferta")
	ErrCodeGeneration    = errs.Class(errs.ErrInternal, "No se pudo generar un código de cupón único")

	ErrRedeemFieldsRequired = errs.Class(errs.ErrInvalidInput, "Código de cupón y DUI son requeridos")
	ErrInvalidCouponCode    = errs.Class(errs.ErrInvalidInput, "Código de cupón inválido")
	ErrCouponNotFound       = errs.Class(errs.ErrNotFound, "Cupón no encontrado")
	ErrMissingMerchantScope = errs.Class(errs.ErrForbidden, "Tu cuenta no está asociada a una empresa")
	ErrWrongMerchant        = errs.Class(errs.ErrForbidden, "El cupón no pertenece a tu empresa")
	ErrAlreadyRedeemed      = errs.Class(errs.ErrBusinessRule, "El cupón ya fue canjeado")
	ErrCouponExpired        = errs.Class(errs.ErrBusinessRule, "El cupón está vencido")
	ErrNationalIDMismatch   = errs.Class(errs.ErrBusinessRule, "El DUI no coincide con el del cliente")

	ErrInvalidCouponID = errs.Class(errs.ErrInvalidInput, "ID de cupón inválido")
)

// CapacityExceededError carries the units left when a purchase did not fit.
// It is marked with ErrCapacityExceeded.
type CapacityExceededError struct {
	Requested int
	Remaining int
}

func (e *CapacityExceededError) Error() string {
	return ErrCapacityExceeded.Error()
}

type PurchaseInput struct {
	OfferID  int64
	Quantity int
	Card     payment.CardInput
}

type PurchaseResult struct {
	OfferID     int64
	OfferTitle  string
	Codes       []string
	UnitPrice   offer.Money
	Total       offer.Money
	PurchasedAt time.Time
	CardLast4   string
}

type RedeemInput struct {
	Code       string
	NationalID string
}

type RedeemResult struct {
	Code         string
	RedeemedAt   time.Time
	OfferTitle   string
	ConsumerName string
}

type CouponCommands interface {
	// Purchase issues every requested unit or none.
	Purchase(ctx context.Context, actor *shared.Identity, in PurchaseInput) (*PurchaseResult, error)
	Redeem(ctx context.Context, actor *shared.Identity, in RedeemInput) (*RedeemResult, error)
	Delete(ctx context.Context, actor *shared.Identity, couponID int64) error
}

type couponCommandsImpl struct {
	uow      shared.UnitOfWork
	codes    coupon.CodeGenerator
	notifier shared.Notifier
	clock    clock.Clock
}

func NewCouponCommands(uow shared.UnitOfWork, codes coupon.CodeGenerator, notifier shared.Notifier, clk clock.Clock) CouponCommands {
	return &couponCommandsImpl{
		uow:      uow,
		codes:    codes,
		notifier: notifier,
		clock:    clk,
	}
}

func (c *couponCommandsImpl) Purchase(ctx context.Context, actor *shared.Identity, in PurchaseInput) (*PurchaseResult, error) {
	if err := shared.RequireRole(actor, account.RoleConsumer); err != nil {
		return nil, err
	}
	if in.OfferID <= 0 {
		return nil, ErrInvalidOfferID
	}
	if in.Quantity < MinPurchaseQuantity || in.Quantity > MaxPurchaseQuantity {
		return nil, ErrInvalidQuantity
	}

	now := c.clock.Now()
	today := c.clock.Today()
	card, err := payment.NewCard(in.Card, now)
	if err != nil {
		return nil, cardError(err)
	}

	var (
		o      *offer.Offer
		issued []*coupon.Coupon
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Within may run this again on a serialization failure
		issued = issued[:0]

		var lockErr error
		o, lockErr = tx.Offers().LockForIssuance(ctx, tx.DB(), in.OfferID)
		if lockErr != nil {
			if infra.IsKind(lockErr, infra.KindNotFound) {
				return ErrOfferNotFound
			}
			return lockErr
		}
		if err := o.CheckPurchasable(today); err != nil {
			return errs.Mark(err, ErrOfferNotAvailable)
		}

		count, err := tx.Offers().CountIssued(ctx, tx.DB(), o.ID())
		if err != nil {
			return err
		}
		if remaining, err := o.ReserveUnits(count, in.Quantity); err != nil {
			return errs.Mark(&CapacityExceededError{Requested: in.Quantity, Remaining: remaining}, ErrCapacityExceeded)
		}

		for range in.Quantity {
			cp, err := c.issueOne(ctx, tx, o, actor.AccountID, now)
			if err != nil {
				return err
			}
			issued = append(issued, cp)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	codes := make([]string, len(issued))
	for i, cp := range issued {
		codes[i] = cp.Code().String()
	}
	total := o.OfferPrice() * offer.Money(len(codes))
	result := &PurchaseResult{
		OfferID:     o.ID(),
		OfferTitle:  o.Title(),
		Codes:       codes,
		UnitPrice:   o.OfferPrice(),
		Total:       total,
		PurchasedAt: now,
		CardLast4:   card.Last4(),
	}

	c.notifier.Notify(shared.Event{
		Kind:       shared.EventCouponsPurchased,
		OccurredAt: now,
		Payload: map[string]any{
			"cliente_id": actor.AccountID,
			"oferta_id":  o.ID(),
			"empresa_id": o.MerchantID(),
			"codigos":    codes,
			"total":      total.String(),
		},
		Mail: purchaseMail(actor.Email, o, codes, total),
	})

	return result, nil
}

// issueOne inserts one coupon, drawing a new code when the previous one is taken.
func (c *couponCommandsImpl) issueOne(ctx context.Context, tx shared.Tx, o *offer.Offer, consumerID int64, now time.Time) (*coupon.Coupon, error) {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := c.codes.Generate(o.MerchantCode())
		if err != nil {
			return nil, errs.Mark(err, ErrCodeGeneration)
		}
		cp := coupon.Issue(code, consumerID, o, now)
		_, inserted, err := tx.Coupons().Insert(ctx, tx.DB(), cp)
		if err != nil {
			return nil, err
		}
		if inserted {
			return cp, nil
		}
		slog.Debug("coupon code collision", "offer_id", o.ID(), "attempt", attempt)
	}
	return nil, ErrCodeGeneration
}

func (c *couponCommandsImpl) Redeem(ctx context.Context, actor *shared.Identity, in RedeemInput) (*RedeemResult, error) {
	if err := shared.RequireRole(actor, account.RoleEmployee); err != nil {
		return nil, err
	}
	if actor.MerchantID == nil {
		return nil, ErrMissingMerchantScope
	}
	merchantID := *actor.MerchantID

	if strings.TrimSpace(in.Code) == "" || strings.TrimSpace(in.NationalID) == "" {
		return nil, ErrRedeemFieldsRequired
	}
	code, err := coupon.NewCouponCode(in.Code)
	if err != nil {
		return nil, ErrInvalidCouponCode
	}

	// Tenant check before taking any lock
	found, err := c.uow.CommandReads().CouponByCode(ctx, code.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Wrap(err, "lookup coupon")
	}
	if err := found.Coupon.CheckMerchant(merchantID); err != nil {
		return nil, ErrWrongMerchant
	}

	now := c.clock.Now()
	today := c.clock.Today()

	var (
		record  *shared.CouponRecord
		expired bool
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		expired = false

		var lockErr error
		record, lockErr = tx.Coupons().LockByCode(ctx, tx.DB(), code.String())
		if lockErr != nil {
			if infra.IsKind(lockErr, infra.KindNotFound) {
				return ErrCouponNotFound
			}
			return lockErr
		}
		cp := record.Coupon

		// The expiry is persisted even though the redemption fails
		if cp.ExpireIfDue(today) {
			if err := tx.Coupons().MarkExpired(ctx, tx.DB(), cp.ID()); err != nil {
				return err
			}
			expired = true
			return nil
		}

		if err := cp.Redeem(in.NationalID, actor.AccountID, now); err != nil {
			return redemptionError(err)
		}
		if err := tx.Coupons().MarkRedeemed(ctx, tx.DB(), cp); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrAlreadyRedeemed
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if expired {
		return nil, ErrCouponExpired
	}

	cp := record.Coupon
	c.notifier.Notify(shared.Event{
		Kind:       shared.EventCouponRedeemed,
		OccurredAt: now,
		Payload: map[string]any{
			"codigo":       cp.Code().String(),
			"cupon_id":     cp.ID(),
			"oferta_id":    cp.OfferID(),
			"empresa_id":   cp.MerchantID(),
			"cliente_id":   cp.ConsumerID(),
			"canjeado_por": actor.AccountID,
		},
	})

	return &RedeemResult{
		Code:         cp.Code().String(),
		RedeemedAt:   now,
		OfferTitle:   record.OfferTitle,
		ConsumerName: record.ConsumerName,
	}, nil
}

// Delete is an unscoped administrative removal.
func (c *couponCommandsImpl) Delete(ctx context.Context, actor *shared.Identity, couponID int64) error {
	if err := shared.RequireRole(actor, account.RoleOperator); err != nil {
		return err
	}
	if couponID <= 0 {
		return ErrInvalidCouponID
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Coupons().Delete(ctx, tx.DB(), couponID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCouponNotFound
		}
		return errs.Wrap(err, "delete coupon")
	}
	slog.Info("coupon deleted", "coupon_id", couponID, "operator_id", actor.AccountID)
	return nil
}

func cardError(err error) error {
	switch {
	case errs.Is(err, payment.ErrInvalidCardNumber):
		return ErrInvalidCardNumber
	case errs.Is(err, payment.ErrInvalidCVV):
		return ErrInvalidCVV
	case errs.Is(err, payment.ErrInvalidExpiry):
		return ErrInvalidCardExpiry
	case errs.Is(err, payment.ErrCardExpired):
		return ErrCardExpired
	default:
		return errs.Mark(err, errs.ErrInvalidInput)
	}
}

func redemptionError(err error) error {
	switch {
	case errs.Is(err, coupon.ErrAlreadyRedeemed):
		return ErrAlreadyRedeemed
	case errs.Is(err, coupon.ErrCouponExpired):
		return ErrCouponExpired
	case errs.Is(err, coupon.ErrNationalIDMismatch):
		return ErrNationalIDMismatch
	default:
		return errs.Mark(err, errs.ErrBusinessRule)
	}
}
