package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/MatBureau/pitemp-monitor/internal/logging"
)

const RequestIDHeader = "X-Request-ID"

// RequestObserver records per-route request outcomes.
type RequestObserver interface {
	ObserveRequest(route string, status int, d time.Duration)
}

// Instrument tags each request with an id, logs it and feeds obs. obs may
// be nil.
func Instrument(logger *slog.Logger, obs RequestObserver, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		r = r.WithContext(logging.WithRequestID(r.Context(), id))

		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)
		d := time.Since(start)

		// the mux fills in Pattern; unmatched paths share one label
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		logger.InfoContext(r.Context(), "http_request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rw.status),
			slog.String("duration", d.String()),
			slog.String("request_id", id),
		)
		if obs != nil {
			obs.ObserveRequest(route, rw.status, d)
		}
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}
