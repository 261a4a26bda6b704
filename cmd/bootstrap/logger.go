package bootstrap

import (
	"log/slog"

	"bonojuntos/internal/handler/middleware"
	"bonojuntos/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger exposes the request logger's slog backend so application logs
// and access logs share one level and format.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
