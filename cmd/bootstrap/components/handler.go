package components

import (
	"ticket-monarch/internal/handler"
	"ticket-monarch/internal/handler/api"
	"ticket-monarch/internal/handler/middleware"
	"ticket-monarch/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewFunnelHandler,
		api.NewAdminHandler,
		middleware.NewSessionMiddleware,
		func(orders usecase.OrdersUseCase) *middleware.AdminMiddleware {
			return middleware.NewAdminMiddleware(orders)
		},
	),
	fx.Invoke(handler.NewRouter),
)
