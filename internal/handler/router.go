package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"wallet-console/internal/domain/identity"
	"wallet-console/internal/handler/api"
	"wallet-console/internal/handler/middleware"
	"wallet-console/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth       *api.AuthHandler
	Profile    *api.ProfileHandler
	Enterprise *api.EnterpriseHandler
	Admin      *api.AdminHandler
	Support    *api.SupportHandler
	Dashboard  *api.DashboardHandler
	Wallet     *api.WalletHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodPost, Path: "/password-reset", Handler: h.Auth.RequestPasswordReset},
				{Method: http.MethodPost, Path: "/password-reset/confirm", Handler: h.Auth.ConfirmPasswordReset},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
				{Method: http.MethodPut, Path: "/password", Handler: h.Auth.ChangePassword},
				{Method: http.MethodPost, Path: "/verify-email", Handler: h.Auth.VerifyEmail},
			})
		}

		// Role-neutral account surfaces: any authenticated role may use them.
		profileGroup := apiGroup.Group("/profile")
		profileGroup.Use(authMiddleware.RequireAuth())
		{
			addRoutes(profileGroup, []route{
				{Method: http.MethodPut, Path: "", Handler: h.Profile.UpdateContact},
			})
		}

		wallet := apiGroup.Group("/wallet")
		wallet.Use(authMiddleware.RequireAuth())
		{
			addRoutes(wallet, []route{
				{Method: http.MethodGet, Path: "/access", Handler: h.Wallet.Access},
			})
		}

		enterprise := apiGroup.Group("/enterprise")
		enterprise.Use(authMiddleware.RequireAuth())
		{
			addRoutes(enterprise, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Enterprise.Get},
				{Method: http.MethodGet, Path: "/:id/members", Handler: h.Enterprise.Members,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(identity.RoleEnterprise, identity.RoleAdmin, identity.RoleSupport)}},
				{Method: http.MethodPost, Path: "/join", Handler: h.Enterprise.Join},
				{Method: http.MethodPost, Path: "/opt-out", Handler: h.Enterprise.OptOut},
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Dashboard.Enterprise,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(identity.RoleEnterprise)}},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(identity.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Dashboard.Admin},
				{Method: http.MethodGet, Path: "/profiles", Handler: h.Admin.ListProfiles},
				{Method: http.MethodPut, Path: "/profiles/:id/active", Handler: h.Admin.SetActive},
				{Method: http.MethodPut, Path: "/profiles/:id/role", Handler: h.Admin.ChangeRole},
			})
		}

		support := apiGroup.Group("/support")
		support.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(identity.RoleSupport, identity.RoleAdmin))
		{
			addRoutes(support, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Dashboard.Support,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(identity.RoleSupport)}},
				{Method: http.MethodGet, Path: "/profiles", Handler: h.Support.FindProfile},
				{Method: http.MethodGet, Path: "/profiles/:id/enterprise", Handler: h.Support.ProfileEnterprise},
				{Method: http.MethodGet, Path: "/profiles/:id/wallet-access", Handler: h.Support.WalletDiagnosis},
			})
		}

		user := apiGroup.Group("/user")
		user.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(identity.RoleUser))
		{
			addRoutes(user, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Dashboard.User},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
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
