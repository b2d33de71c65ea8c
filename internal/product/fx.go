package product

import (
	"go.uber.org/fx"

	"github.com/contafacil/portal/internal/product/repository"
	"github.com/contafacil/portal/internal/product/service"
)

var Module = fx.Module("product",
	fx.Provide(
		repository.NewRepository,
		service.NewService,
	),
)
