package components

import (
	"bonojuntos/internal/infra/readstore"
	"bonojuntos/internal/infra/writerepo"
	"bonojuntos/internal/usecase/commands"
	"bonojuntos/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write-side repositories for commands
		fx.Annotate(
			writerepo.NewPromotionRepository,
			fx.As(new(commands.PromotionRepository)),
		),
		fx.Annotate(
			writerepo.NewCollaboratorRepository,
			fx.As(new(commands.CollaboratorRepository)),
		),
		fx.Annotate(
			writerepo.NewRedemptionRepository,
			fx.As(new(commands.RedemptionRepository)),
		),
		fx.Annotate(
			writerepo.NewIssuanceRepository,
			fx.As(new(commands.IssuanceRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewPromotionReadStore,
			fx.As(new(queries.PromotionReadStore)),
		),
		fx.Annotate(
			readstore.NewCollaboratorReadStore,
			fx.As(new(queries.CollaboratorReadStore)),
		),
	),
)
