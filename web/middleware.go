package web

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
)

// accessLog writes one structured line per request.
func (server *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
		start := time.Now()
		wrapped := middleware.NewWrapResponseWriter(responseWriter, request.ProtoMajor)
		next.ServeHTTP(wrapped, request)

		status := wrapped.Status()
		if status == 0 {
			status = http.StatusOK
		}
		level := server.logger.Info
		if status >= http.StatusInternalServerError {
			level = server.logger.Error
		}
		level("http_request",
			"method", request.Method,
			"path", request.URL.Path,
			"status", status,
			"bytes", wrapped.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(request.Context()),
		)
	})
}

// plaintext tells the CSRF middleware the server is reached over plain HTTP,
// so it skips the Referer checks meant for TLS.
func plaintext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
		if request.TLS == nil && !strings.EqualFold(request.Header.Get("X-Forwarded-Proto"), "https") {
			request = csrf.PlaintextHTTPRequest(request)
		}
		next.ServeHTTP(responseWriter, request)
	})
}
