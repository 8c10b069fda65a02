package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/liftstats/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery turns handler panics into plain 500s instead of dropped
// connections. The panic and its stack go to the log, the event to the
// panics counter.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			tracked := &trackingResponseWriter{ResponseWriter: respWriter}
			defer func() {
				if r := recover(); r != nil {
					log.Errorf("http: panic serving %s %s: %v\n%s", req.Method, req.URL.Path, r, debug.Stack())
					if metricsManager != nil {
						metricsManager.CounterHandleRequestPanic.Inc()
					}
					// a partially written response is already on the wire
					if !tracked.wroteHeader {
						http.Error(tracked, "internal server error", http.StatusInternalServerError)
					}
				}
			}()

			// handler call
			next.ServeHTTP(tracked, req)
		})
	}
}

type trackingResponseWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *trackingResponseWriter) WriteHeader(statusCode int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *trackingResponseWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}
