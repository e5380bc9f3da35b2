package middleware

import (
	"log/slog"
	"net/http"
)

// Recover converts a handler panic into a 500 response rendered by onPanic.
// No panic is ever fatal to the process.
func Recover(onPanic http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					slog.Error("panic", "err", rec, "path", r.URL.Path)
					onPanic(w, r)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
