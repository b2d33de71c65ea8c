package invoice

import (
	"github.com/contafacil/portal/internal/invoice/repository"
	"github.com/contafacil/portal/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
