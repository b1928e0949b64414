package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors lets any origin read boards; there are no credentials to protect.
func Cors() Middleware {
	options := cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         600,
	}
	return cors.New(options).Handler
}
