package components

import (
	"context"
	"log/slog"

	"ticket-monarch/internal/infra/backend"
	"ticket-monarch/internal/infra/events"
	"ticket-monarch/internal/pkg/clock"
	"ticket-monarch/internal/pkg/config"
	"ticket-monarch/internal/usecase"
	"ticket-monarch/internal/usecase/checkoutform"

	"go.uber.org/fx"
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		clock.NewRealClock,
	),
)

var BackendModule = fx.Module("backend",
	fx.Provide(
		NewBackendClient,
		fx.Annotate(
			func(c *backend.Client) *backend.Client { return c },
			fx.As(new(checkoutform.CheckoutClient)),
			fx.As(new(usecase.OrdersBackend)),
		),
	),
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewBackendClient waits for the order backend on start when BACKEND_WAIT_HEALTHY is set.
func NewBackendClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *backend.Client {
	client := backend.NewClient(cfg.Backend, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Backend.WaitHealthy <= 0 {
				return nil
			}
			if err := client.WaitUntilHealthy(ctx, cfg.Backend.WaitHealthy); err != nil {
				logger.Warn("order backend not reachable, continuing", "base_url", cfg.Backend.BaseURL, "error", err)
			}
			return nil
		},
	})

	return client
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (usecase.EventPublisher, error) {
	pub, err := events.NewPublisher(cfg.Events, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
