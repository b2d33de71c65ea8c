package report

import (
	"go.uber.org/fx"

	"github.com/contafacil/portal/internal/report/service"
)

var Module = fx.Module("report",
	fx.Provide(service.NewService),
)
