package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

const requestIDHeader = "X-Request-Id"

// middlewares is the chain applied to every route, outermost first.
// Recoverer sits inside the access log so recovered panics are logged as 500.
func (s *Server) middlewares() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		hlog.NewHandler(s.logger),
		middleware.RequestID,
		exposeRequestID,
		hlog.AccessHandler(accessLog),
		middleware.Recoverer,
	}
}

// exposeRequestID returns chi's request id to the caller and tags the
// request logger with it.
func exposeRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			w.Header().Set(requestIDHeader, id)
			hlog.FromRequest(r).UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("request_id", id)
			})
		}
		next.ServeHTTP(w, r)
	})
}

func accessLog(r *http.Request, status, size int, elapsed time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("elapsed", elapsed).
		Msg("request")
}
