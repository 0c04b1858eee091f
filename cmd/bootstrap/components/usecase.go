package components

import (
	"fmt"
	"time"

	"cuponx-backend/internal/domain/coupon"
	"cuponx-backend/internal/pkg/clock"
	"cuponx-backend/internal/pkg/config"
	"cuponx-backend/internal/pkg/jwt"
	"cuponx-backend/internal/usecase"
	"cuponx-backend/internal/usecase/commands"
	"cuponx-backend/internal/usecase/queries"
	"cuponx-backend/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewClock,
	fx.Annotate(
		coupon.NewRandomCodeGenerator,
		fx.As(new(coupon.CodeGenerator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewAuthCommands,
		commands.NewCouponCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAccountQueries,
		queries.NewOfferQueries,
		queries.NewCatalogQueries,
		queries.NewCouponQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := time.LoadLocation(cfg.Server.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", cfg.Server.TimeZone, err)
	}
	return clock.NewRealClock(loc), nil
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	jwtService *jwt.Service,
	notifier shared.Notifier,
	clk clock.Clock,
	cfg config.Config,
) commands.AuthCommands {
	return commands.NewAuthCommands(uow, jwtService, notifier, clk, cfg.Server.PublicURL)
}
