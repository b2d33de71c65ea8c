package auth

import (
	"go.uber.org/fx"

	"github.com/contafacil/portal/internal/auth/repository"
	"github.com/contafacil/portal/internal/auth/service"
	"github.com/contafacil/portal/internal/auth/session"
)

var Module = fx.Module("auth",
	session.Module,
	fx.Provide(
		repository.NewRepository,
		repository.NewSessionRepository,
		service.NewService,
	),
)
