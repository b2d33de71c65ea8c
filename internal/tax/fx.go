package tax

import (
	"github.com/contafacil/portal/internal/tax/repository"
	"github.com/contafacil/portal/internal/tax/service"
	"go.uber.org/fx"
)

var Module = fx.Module("tax.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
