package accountant

import (
	"go.uber.org/fx"

	"github.com/contafacil/portal/internal/accountant/repository"
	"github.com/contafacil/portal/internal/accountant/service"
)

var Module = fx.Module("accountant",
	fx.Provide(
		repository.NewRepository,
		service.NewService,
	),
)
