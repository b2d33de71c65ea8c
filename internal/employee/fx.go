package employee

import (
	"go.uber.org/fx"

	"github.com/contafacil/portal/internal/employee/repository"
	"github.com/contafacil/portal/internal/employee/service"
)

var Module = fx.Module("employee",
	fx.Provide(
		repository.NewRepository,
		service.NewService,
	),
)
