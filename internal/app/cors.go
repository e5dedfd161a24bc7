package app

import (
	"net/http"

	"github.com/Raimguhinov/morrow-go/internal/config"
	"github.com/rs/cors"
)

func corsMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:     cfg.HTTP.CORS.AllowedOrigins,
		AllowedMethods:     cfg.HTTP.CORS.AllowedMethods,
		AllowedHeaders:     cfg.HTTP.CORS.AllowedHeaders,
		ExposedHeaders:     cfg.HTTP.CORS.ExposedHeaders,
		AllowCredentials:   cfg.HTTP.CORS.AllowCredentials,
		OptionsPassthrough: cfg.HTTP.CORS.OptionsPassthrough,
		Debug:              cfg.HTTP.CORS.Debug,
	})
	return c.Handler
}
