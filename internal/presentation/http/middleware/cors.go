package middleware

import (
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sangkips/booth-pos/internal/config"
)

// CORSMiddleware applies the configured cross-origin policy.
// With no origins configured every cross-origin request is refused.
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:  cfg.AllowedMethods,
		AllowHeaders:  cfg.AllowedHeaders,
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		MaxAge:        cfg.MaxAge,
	}

	switch {
	case slices.Contains(cfg.AllowedOrigins, "*"):
		// browsers reject credentials on a wildcard origin
		corsConfig.AllowAllOrigins = true
	case len(cfg.AllowedOrigins) == 0:
		corsConfig.AllowOriginFunc = func(string) bool { return false }
	default:
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = cfg.AllowCredentials
	}

	return cors.New(corsConfig)
}
