package shared

import (
	"context"

	"cuponx-backend/internal/domain/account"
	"cuponx-backend/internal/domain/coupon"
	"cuponx-backend/internal/domain/offer"
	sqlc "cuponx-backend/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within runs fn in one transaction, retried on serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads runs on the pool, outside any transaction.
	CommandReads() CommandReads
}

type Tx interface {
	Accounts() AccountRepository
	Offers() OfferRepository
	Coupons() CouponRepository
	DB() sqlc.DBTX
}

// CommandReads are the lookups commands need before or while they write.
type CommandReads interface {
	// AccountsByEmail searches every account variant; one entry per variant that matched.
	AccountsByEmail(ctx context.Context, email string) ([]*account.Account, error)
	AccountByID(ctx context.Context, role account.Role, id int64) (*account.Account, error)
	ConsumerByVerificationToken(ctx context.Context, token string) (*account.Account, error)
	ConsumerTaken(ctx context.Context, email, nationalID string) (ConsumerTaken, error)
	CouponByCode(ctx context.Context, code string) (*CouponRecord, error)
}

type ConsumerTaken struct {
	Email      bool
	NationalID bool
}

// CouponRecord is a coupon together with the display data its redemption reports.
type CouponRecord struct {
	Coupon       *coupon.Coupon
	OfferTitle   string
	ConsumerName string
}

type AccountRepository interface {
	CreateConsumer(ctx context.Context, tx sqlc.DBTX, reg *account.ConsumerRegistration) (int64, error)
	// MarkVerified reports false when the consumer was already verified.
	MarkVerified(ctx context.Context, tx sqlc.DBTX, consumerID int64) (bool, error)
	UpdatePassword(ctx context.Context, tx sqlc.DBTX, role account.Role, id int64, passwordHash string) error
}

type OfferRepository interface {
	// LockForIssuance takes the row lock that serializes purchases of one offer.
	LockForIssuance(ctx context.Context, tx sqlc.DBTX, offerID int64) (*offer.Offer, error)
	CountIssued(ctx context.Context, tx sqlc.DBTX, offerID int64) (int, error)
}

type CouponRepository interface {
	// Insert reports inserted=false when the code is already taken.
	Insert(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) (id int64, inserted bool, err error)
	LockByCode(ctx context.Context, tx sqlc.DBTX, code string) (*CouponRecord, error)
	MarkRedeemed(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error
	MarkExpired(ctx context.Context, tx sqlc.DBTX, couponID int64) error
	Delete(ctx context.Context, tx sqlc.DBTX, couponID int64) error
}
