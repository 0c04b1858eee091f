package components

import (
	"cuponx-backend/internal/handler"
	"cuponx-backend/internal/handler/api"
	"cuponx-backend/internal/handler/middleware"
	"cuponx-backend/internal/infra/db"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		fx.Annotate(
			db.NewPinger,
			fx.As(new(api.Pinger)),
		),
		api.NewAuthHandler,
		api.NewOfferHandler,
		api.NewCatalogHandler,
		api.NewCouponHandler,
		api.NewHealthHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
