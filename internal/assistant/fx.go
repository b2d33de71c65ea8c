package assistant

import (
	"go.uber.org/fx"

	"github.com/contafacil/portal/internal/assistant/service"
)

var Module = fx.Module("assistant",
	fx.Provide(service.New),
)
