package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"cuponx-backend/internal/domain/account"
	"cuponx-backend/internal/handler/api"
	"cuponx-backend/internal/handler/middleware"
	"cuponx-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *slog.Logger
	AuthMiddleware *middleware.AuthMiddleware
	Auth           *api.AuthHandler
	Offers         *api.OfferHandler
	Catalog        *api.CatalogHandler
	Coupons        *api.CouponHandler
	Health         *api.HealthHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	authMw := p.AuthMiddleware

	engine.GET("/health", p.Health.Health)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/health", Handler: p.Health.Health},
			{Method: http.MethodGet, Path: "/status", Handler: p.Health.Status},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: p.Auth.Login},
				{Method: http.MethodPost, Path: "/register", Handler: p.Auth.Register},
				{Method: http.MethodGet, Path: "/verify", Handler: p.Auth.Verify},
				{Method: http.MethodPost, Path: "/forgot-password", Handler: p.Auth.ForgotPassword},
				{Method: http.MethodPost, Path: "/reset-password", Handler: p.Auth.ResetPassword},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/change-password", Handler: p.Auth.ChangePassword},
				{Method: http.MethodGet, Path: "/me", Handler: p.Auth.Me},
			})
		}

		offers := apiGroup.Group("/ofertas")
		{
			addRoutes(offers, []route{
				{Method: http.MethodGet, Path: "", Handler: p.Offers.ListApproved},
				{Method: http.MethodGet, Path: "/top", Handler: p.Offers.ListTop},
				{Method: http.MethodGet, Path: "/vigentes", Handler: p.Offers.ListLive},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/rubros", Handler: p.Catalog.ListCategories},
		})

		merchants := apiGroup.Group("/empresas")
		{
			addRoutes(merchants, []route{
				{Method: http.MethodGet, Path: "", Handler: p.Catalog.ListMerchants},
				{Method: http.MethodGet, Path: "/top", Handler: p.Catalog.ListTopMerchants},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Catalog.GetMerchant},
				{Method: http.MethodGet, Path: "/:id/ofertas", Handler: p.Catalog.ListMerchantOffers},
			})
		}

		coupons := apiGroup.Group("/cupones")
		coupons.Use(authMw.RequireAuth())
		{
			addRoutes(coupons, []route{
				{Method: http.MethodGet, Path: "/clientes/:id/cupones", Handler: p.Coupons.ListByConsumer},
				{
					Method:  http.MethodPost,
					Path:    "/comprar",
					Handler: p.Coupons.Purchase,
					Mw:      []gin.HandlerFunc{authMw.RequireRole(account.RoleConsumer)},
				},
				{
					Method:  http.MethodPost,
					Path:    "/canjear",
					Handler: p.Coupons.Redeem,
					Mw:      []gin.HandlerFunc{authMw.RequireRole(account.RoleEmployee)},
				},
				{
					Method:  http.MethodDelete,
					Path:    "/:id",
					Handler: p.Coupons.Delete,
					Mw:      []gin.HandlerFunc{authMw.RequireRole(account.RoleOperator)},
				},
			})
		}
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
