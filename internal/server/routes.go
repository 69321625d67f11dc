package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"shipquote/pkg/httpx/reply"
	"shipquote/pkg/logx"
	"shipquote/pkg/middlewarex"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Post("/get-quotes", handler(s.postGetQuotes))
}

// NewHandler wires the middleware chain in front of the routes.
func NewHandler(
	base *slog.Logger,
	s Server,
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger(base),
		middlewarex.RequestLogging(sensitiveDataMasker, logFieldMaxLen),
		middlewarex.ResponseLogging(sensitiveDataMasker, logFieldMaxLen),
		middlewarex.Recovery,
	)

	s.RegisterRoutes(r)

	return r
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
