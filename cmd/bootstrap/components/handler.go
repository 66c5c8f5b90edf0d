package components

import (
	"go.uber.org/fx"

	"wallet-console/internal/handler"
	"wallet-console/internal/handler/api"
	"wallet-console/internal/handler/middleware"
	"wallet-console/internal/pkg/config"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewProfileHandler,
		api.NewEnterpriseHandler,
		api.NewAdminHandler,
		api.NewSupportHandler,
		api.NewDashboardHandler,
		api.NewWalletHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.Logger {
			return middleware.NewLogger(cfg.Log)
		},
		func(auth *api.AuthHandler, profile *api.ProfileHandler, enterprise *api.EnterpriseHandler,
			admin *api.AdminHandler, support *api.SupportHandler, dashboard *api.DashboardHandler,
			wallet *api.WalletHandler) handler.Handlers {
			return handler.Handlers{
				Auth:       auth,
				Profile:    profile,
				Enterprise: enterprise,
				Admin:      admin,
				Support:    support,
				Dashboard:  dashboard,
				Wallet:     wallet,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
