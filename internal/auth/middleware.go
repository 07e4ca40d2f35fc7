package auth

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
)

// Header names and query parameter checked for the API key, in order.
const (
	HeaderAPIKey   = "X-API-Key"
	HeaderRapidAPI = "X-RapidAPI-Key"
	QueryAPIKey    = "api_key"
)

// APIKey returns middleware that enforces API key authentication on every
// request passing through it.
func APIKey(mode, key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		// Non-apikey modes or unconfigured key → allow everything.
		if mode != "apikey" || key == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := presentedKey(r)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				slog.Warn("auth: rejected request", "path", r.URL.Path, "remote", r.RemoteAddr, "key_present", got != "")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"invalid api key"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func presentedKey(r *http.Request) string {
	if v := r.Header.Get(HeaderAPIKey); v != "" {
		return v
	}
	if v := r.Header.Get(HeaderRapidAPI); v != "" {
		return v
	}
	return r.URL.Query().Get(QueryAPIKey)
}
