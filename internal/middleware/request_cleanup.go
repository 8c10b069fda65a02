package middleware

import (
	"io"
	"net/http"
)

// A rejected workout upload can still carry the whole CSV export in its
// body; draining more than this just to keep the connection alive is not
// worth it, the leftover closes the connection instead.
const maxDrainBytes = 256 << 10

// DrainAndCloseRequest - avoid potential overhead and memory leaks by draining
// the request body (up to maxDrainBytes) and closing it
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.Copy(io.Discard, io.LimitReader(r.Body, maxDrainBytes))
				_ = r.Body.Close()
			}
		})
	}
}
