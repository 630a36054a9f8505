package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/oggyb/sms-dispatch/internal/logger"
	"github.com/oggyb/sms-dispatch/internal/response"
	"github.com/sirupsen/logrus"
)

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// RequestLogger tags each request with an id (reusing an incoming
// X-Request-ID when present) and logs method, path, status and duration.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			id := r.Header.Get(response.RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(response.RequestIDHeader, id)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			logger.WithFields(logrus.Fields{
				"request_id": id,
				"status":     rec.status,
				"remote":     r.RemoteAddr,
				"duration":   time.Since(start).String(),
			}).Infof("%s %s", r.Method, r.URL.Path)
		})
	}
}
