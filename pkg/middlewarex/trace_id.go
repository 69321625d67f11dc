package middlewarex

import (
	"net/http"

	"shipquote/pkg/contextx"
	"shipquote/pkg/httpx"
)

func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := contextx.TraceID(r.Header.Get(httpx.HeaderNameTraceID))

		if traceID == "" {
			traceID = contextx.NewTraceID()
		}

		ctx := contextx.WithTraceID(r.Context(), traceID)

		w.Header().Set(httpx.HeaderNameTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
