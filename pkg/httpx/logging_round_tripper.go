package httpx

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"time"

	"shipquote/pkg/contextx"
	"shipquote/pkg/logx"
)

const HeaderNameTraceID = "X-Trace-Id"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// LoggingRoundTripper dumps outgoing requests and their responses into the
// context logger and forwards the caller's trace id to the remote side.
type LoggingRoundTripper struct {
	next                http.RoundTripper
	sensitiveDataMasker logx.SensitiveDataMaskerInterface
	logFieldMaxLen      int
}

func NewLoggingRoundTripper(
	next http.RoundTripper,
	opts ...Option,
) LoggingRoundTripper {
	rt := LoggingRoundTripper{
		next:                next,
		sensitiveDataMasker: logx.NewNopSensitiveDataMasker(),
		logFieldMaxLen:      0,
	}

	for _, opt := range opts {
		opt(&rt)
	}

	return rt
}

func (rt LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		traceID = contextx.NewTraceID()
	}

	if req.Header.Get(HeaderNameTraceID) == "" {
		req = req.Clone(ctx)
		req.Header.Set(HeaderNameTraceID, traceID.String())
	}

	reqBytes, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		logger(ctx).Error(
			"httputil.DumpRequestOut",
			logx.Stringer(logx.FieldRequestID, traceID),
			logx.Error(err),
		)
	}

	logger(ctx).Info(
		logx.FieldHTTPRequest,
		logx.Stringer(logx.FieldRequestID, traceID),
		slog.String(logx.FieldRequestBody, string(rt.truncate(rt.sensitiveDataMasker.Mask(reqBytes)))),
	)

	start := time.Now()

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	respBytes, err := httputil.DumpResponse(resp, true)
	if err != nil {
		logger(ctx).Error(
			"httputil.DumpResponse",
			logx.Stringer(logx.FieldRequestID, traceID),
			logx.Error(err),
		)
	}

	logger(ctx).Info(
		logx.FieldHTTPResponse,
		logx.Stringer(logx.FieldRequestID, traceID),
		slog.Int(logx.FieldResponseStatus, resp.StatusCode),
		slog.String(logx.FieldResponseBody, string(rt.truncate(rt.sensitiveDataMasker.Mask(respBytes)))),
		slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
	)

	return resp, nil
}

func (rt LoggingRoundTripper) truncate(b []byte) []byte {
	if rt.logFieldMaxLen != 0 && len(b) > rt.logFieldMaxLen {
		return b[:rt.logFieldMaxLen]
	}

	return b
}
