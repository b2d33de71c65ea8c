package client

import (
	"github.com/contafacil/portal/internal/client/repository"
	"github.com/contafacil/portal/internal/client/service"
	"go.uber.org/fx"
)

var Module = fx.Module("client.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
