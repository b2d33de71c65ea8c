package document

import (
	"github.com/contafacil/portal/internal/document/repository"
	"github.com/contafacil/portal/internal/document/service"
	"go.uber.org/fx"
)

var Module = fx.Module("document.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
