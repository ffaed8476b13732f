package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/phrazzld/todo-api/internal/config"
)

// NewCORSMiddleware adds cross-origin headers to every response and answers
// preflight OPTIONS requests with 204 without calling the next handler.
func NewCORSMiddleware(cfg config.CORSConfig) func(http.Handler) http.Handler {
	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")
	maxAge := ""
	if cfg.MaxAgeSeconds > 0 {
		maxAge = strconv.Itoa(cfg.MaxAgeSeconds)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if allowed := allowedOrigin(cfg.AllowedOrigins, origin); allowed != "" {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", allowed)
				if allowed != "*" {
					h.Add("Vary", "Origin")
				}
				if methods != "" {
					h.Set("Access-Control-Allow-Methods", methods)
				}
				if headers != "" {
					h.Set("Access-Control-Allow-Headers", headers)
				}
				h.Set("Access-Control-Expose-Headers", "X-Trace-ID")
				if maxAge != "" {
					h.Set("Access-Control-Max-Age", maxAge)
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// allowedOrigin returns the value for Access-Control-Allow-Origin, or "" when
// the request origin is not allowed. Requests without an Origin header only
// receive the wildcard.
func allowedOrigin(allowed []string, origin string) string {
	for _, o := range allowed {
		if o == "*" {
			return "*"
		}
		if origin != "" && strings.EqualFold(o, origin) {
			return origin
		}
	}
	return ""
}
