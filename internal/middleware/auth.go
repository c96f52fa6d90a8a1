package middleware

import (
	"net/http"
	"strings"
)

// backendCookieName is the cookie the backend issues at login. Its value is
// opaque to this layer; it is forwarded verbatim on authenticated API calls.
const backendCookieName = "session"

// BackendSession lifts the backend's session cookie into request context so
// handlers can forward it without touching cookies themselves.
func BackendSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(backendCookieName); err == nil {
			if token := strings.TrimSpace(c.Value); token != "" {
				r = r.WithContext(WithBackendSession(r.Context(), token))
			}
		}
		next.ServeHTTP(w, r)
	})
}
