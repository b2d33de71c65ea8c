package partner

import (
	"go.uber.org/fx"

	"github.com/contafacil/portal/internal/partner/repository"
	"github.com/contafacil/portal/internal/partner/service"
)

var Module = fx.Module("partner",
	fx.Provide(
		repository.NewRepository,
		service.NewService,
	),
)
