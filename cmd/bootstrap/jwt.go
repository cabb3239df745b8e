package bootstrap

import (
	"time"

	"limited-drop-api/internal/handler/middleware"
	"limited-drop-api/internal/pkg/config"
	"limited-drop-api/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(fx.Self()),
			fx.As(new(middleware.TokenValidator)),
		),
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, err
	}

	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer, duration), nil
}
