package components

import (
	"context"

	"go.uber.org/fx"

	"wallet-console/internal/gate"
	"wallet-console/internal/pkg/config"
	"wallet-console/internal/session"
)

// SessionModule wires the observable session core and its route gate.
// Embedded consoles share this store with the HTTP surface, so a role
// change lands in one place.
var SessionModule = fx.Module("session",
	fx.Provide(
		fx.Annotate(
			session.NewLocalProvider,
			fx.As(new(session.AuthProvider)),
		),
		fx.Annotate(
			session.NewLocalFetcher,
			fx.As(new(session.ProfileFetcher)),
		),
		session.NewStore,
		NewGateController,
	),
	fx.Invoke(runGateController),
)

func NewGateController(store *session.Store, cfg config.Config) *gate.Controller {
	return gate.NewController(store, cfg.Gate.ResolveTimeout)
}

func runGateController(lc fx.Lifecycle, controller *gate.Controller) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go controller.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
