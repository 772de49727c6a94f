package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// devOrigins are the local frontend dev servers allowed in development
var devOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

// CORSOptions describes what the dashboard frontend may call. The API has
// no cookies or auth headers, so credentials stay disabled.
func CORSOptions(frontendURL string, dev bool) cors.Options {
	origins := []string{frontendURL}
	if dev {
		origins = append(origins, devOrigins...)
	}

	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}
}

// CORS returns the CORS middleware for the dashboard frontend
func CORS(frontendURL string, dev bool) func(http.Handler) http.Handler {
	return cors.Handler(CORSOptions(frontendURL, dev))
}
