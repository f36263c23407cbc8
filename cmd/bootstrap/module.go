package bootstrap

import (
	"bakery-preorder/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	CatalogModule,
	RelayModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
)
