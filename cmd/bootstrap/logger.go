package bootstrap

import (
	"log/slog"

	"ticket-monarch/internal/handler/middleware"
	"ticket-monarch/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger builds the process logger and installs it as the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewSlogLogger(cfg.Log)
}
