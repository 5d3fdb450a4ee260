package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORSHandler returns a middleware that applies CORS headers based
// on allowedOrigins. Each entry must be a full origin (scheme + host,
// no trailing slash). The browser client is the only intended consumer,
// so methods and headers cover exactly the REST surface of this API.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
