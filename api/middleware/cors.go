package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/memberhubhq/memberhub-backend/pkg/config"
)

// CORS returns middleware that applies the API's allowed origin policy.
// Credentials stay enabled so the session cookies survive cross-origin calls.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
