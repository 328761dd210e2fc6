package bootstrap

import (
	"ticket-monarch/internal/domain/booking"
	"ticket-monarch/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewCatalog,
	),
)

func NewCatalog(cfg config.Config) (*booking.Catalog, error) {
	return booking.LoadCatalog(cfg.Catalog.Path)
}
