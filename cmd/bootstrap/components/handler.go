package components

import (
	"limited-drop-api/internal/handler"
	"limited-drop-api/internal/handler/api"
	"limited-drop-api/internal/handler/middleware"
	"limited-drop-api/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewProductHandler,
		api.NewOrderHandler,
		api.NewCartHandler,
		api.NewWaitlistHandler,
		api.NewEchoHandler,
		api.NewPressHandler,
		api.NewPhaseHandler,
		api.NewAccountHandler,
		middleware.NewAuthMiddleware,
		NewCheckoutRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewCheckoutRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewCheckoutRateLimiter(cfg.RateLimit)
}
