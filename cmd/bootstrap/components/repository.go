package components

import (
	"go.uber.org/fx"

	"wallet-console/internal/infra/readstore"
	repo_impl "wallet-console/internal/infra/repository"
	"wallet-console/internal/usecase/queries"
	"wallet-console/internal/usecase/shared"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Read side
		fx.Annotate(
			readstore.NewProfileReadStore,
			fx.As(new(queries.ProfileReadStore)),
		),
		fx.Annotate(
			readstore.NewEnterpriseReadStore,
			fx.As(new(queries.EnterpriseReadStore)),
		),
		fx.Annotate(
			readstore.NewWalletAccessStore,
			fx.As(new(queries.WalletAccessChecker)),
			fx.As(new(queries.WalletStandingReader)),
		),
		// Write side
		fx.Annotate(
			repo_impl.NewProfileRepository,
			fx.As(new(shared.ProfileRepository)),
		),
		fx.Annotate(
			repo_impl.NewEnterpriseRepository,
			fx.As(new(shared.EnterpriseRepository)),
		),
		shared.NewUnitOfWork,
	),
)
