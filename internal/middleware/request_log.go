package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"herdbook/internal/platform/logger"
)

// RequestObserver recibe la duración de cada request (lo implementa metrics.Metrics).
type RequestObserver interface {
	ObserveRequest(method, route string, status int, d time.Duration)
}

// RequestLog:
// - deja en el contexto un logger con request_id (chimw.RequestID debe ir antes)
// - al terminar loguea método, ruta, status y duración
// - si obs != nil, reporta la latencia por patrón de ruta de chi
func RequestLog(log logger.Logger, obs RequestObserver) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			reqLog := log.With(logger.Fields{"request_id": chimw.GetReqID(r.Context())})
			ctx := logger.WithContext(r.Context(), reqLog)

			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := ""
			if rc := chi.RouteContext(r.Context()); rc != nil {
				route = rc.RoutePattern()
			}
			elapsed := time.Since(start)

			if obs != nil {
				obs.ObserveRequest(r.Method, route, status, elapsed)
			}

			fields := logger.Fields{
				"method":      r.Method,
				"path":        r.URL.Path,
				"route":       route,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": elapsed.Milliseconds(),
			}
			switch {
			case status >= 500:
				reqLog.Error("request", fields)
			case status >= 400:
				reqLog.Warn("request", fields)
			default:
				reqLog.Info("request", fields)
			}
		})
	}
}
