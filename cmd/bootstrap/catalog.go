package bootstrap

import (
	"time"

	"bakery-preorder/internal/domain/order"
	"bakery-preorder/internal/infra/catalog"
	"bakery-preorder/internal/pkg/config"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		NewCatalog,
		NewShopLocation,
	),
)

func NewCatalog(cfg config.Config) (*order.Catalog, error) {
	return catalog.Load(cfg.Catalog)
}

// NewShopLocation resolves the shop's timezone once at startup; pickup
// date checks compare calendar days in this zone.
func NewShopLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Server.TimeZone)
}
