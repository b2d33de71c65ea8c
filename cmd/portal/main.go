package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/contafacil/portal/internal/clock"
	"github.com/contafacil/portal/internal/config"
	"github.com/contafacil/portal/internal/migration"
	"github.com/contafacil/portal/internal/observability"
	"github.com/contafacil/portal/internal/server"
	"github.com/contafacil/portal/pkg/db"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,

		// Schema and demo data
		migration.Module,

		// HTTP surface and all domain modules
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
