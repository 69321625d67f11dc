package reply

import (
	"cmp"
	"context"
	"log/slog"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"shipquote/pkg/contextx"
	"shipquote/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Error string `json:"error"`
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// Error writes {"error": <description>}. Client errors carry their
// description verbatim; anything unclassified becomes a bare 500.
func Error(ctx context.Context, w http.ResponseWriter, err error) {
	statusCode := StatusCode(err)

	level := slog.LevelWarn
	if statusCode >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	logger(ctx).Log(ctx, level, "error",
		logx.Error(err),
		slog.String(logx.FieldErrorCode, failure.Code(err).String()),
	)

	message := http.StatusText(statusCode)
	if statusCode < http.StatusInternalServerError {
		message = cmp.Or(failure.Description(err), message)
	}

	JSON(ctx, w, statusCode, errorResponse{Error: message})
}

func StatusCode(err error) int {
	switch {
	case failure.IsInvalidArgumentError(err):
		return http.StatusBadRequest
	case failure.IsNotFoundError(err):
		return http.StatusNotFound
	case failure.IsUnauthorizedError(err):
		return http.StatusUnauthorized
	case failure.IsForbiddenError(err):
		return http.StatusForbidden
	case failure.IsConflictError(err):
		return http.StatusConflict
	case failure.IsUnprocessableEntityError(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
