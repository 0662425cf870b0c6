package middleware

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/cors"
)

func CORS(allowedOrigins []string, log *slog.Logger) func(http.Handler) http.Handler {
	// empty list allows everything (local development)
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	log.Info("cors configured", slog.Any("allowed_origins", allowedOrigins))

	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With", "Idempotency-Key"},
		ExposedHeaders:   []string{"Link", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
