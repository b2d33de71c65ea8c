package plan

import (
	"go.uber.org/fx"

	"github.com/contafacil/portal/internal/plan/repository"
	"github.com/contafacil/portal/internal/plan/service"
)

var Module = fx.Module("plan",
	fx.Provide(
		repository.NewRepository,
		service.NewService,
	),
)
