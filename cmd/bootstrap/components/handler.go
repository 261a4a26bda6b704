package components

import (
	"bonojuntos/internal/handler"
	"bonojuntos/internal/handler/api"
	"bonojuntos/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewScannerHandler,
		api.NewPromotionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
