package middleware

import (
	"log/slog"
	"slices"

	"limited-drop-api/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Headers the storefront reads back from checkout and error responses.
var exposedHeaders = []string{"Location", "Idempotent-Replayed", requestIDHeader}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	expose := slices.Clone(cfg.ExposeHeaders)
	for _, h := range exposedHeaders {
		if !slices.Contains(expose, h) {
			expose = append(expose, h)
		}
	}

	allow := slices.Clone(cfg.AllowHeaders)
	if !slices.Contains(allow, requestIDHeader) {
		allow = append(allow, requestIDHeader)
	}

	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "expose_headers", expose)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allow,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
