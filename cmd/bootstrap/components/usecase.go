package components

import (
	"log/slog"

	"ticket-monarch/internal/domain/booking"
	"ticket-monarch/internal/pkg/clock"
	"ticket-monarch/internal/pkg/config"
	"ticket-monarch/internal/usecase"
	"ticket-monarch/internal/usecase/checkoutform"
	"ticket-monarch/internal/usecase/handoff"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		NewFunnelUseCase,
		NewOrdersUseCase,
	),
)

func NewFunnelUseCase(
	cfg config.Config,
	catalog *booking.Catalog,
	store handoff.KV,
	client checkoutform.CheckoutClient,
	publisher usecase.EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) usecase.FunnelUseCase {
	return usecase.NewFunnelUseCase(catalog, store, client, publisher, clk, logger, cfg.Session.TTL)
}

func NewOrdersUseCase(cfg config.Config, b usecase.OrdersBackend, logger *slog.Logger) usecase.OrdersUseCase {
	if cfg.Admin.KeyHash == "" {
		logger.Warn("ADMIN_KEY_HASH is empty, admin routes will refuse every request")
	}
	return usecase.NewOrdersUseCase(b, cfg.Admin.KeyHash)
}
