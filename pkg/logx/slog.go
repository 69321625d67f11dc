package logx

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lmittmann/tint"
)

var Error = tint.Err //nolint:gochecknoglobals

const (
	FormatText = "text"
	FormatJSON = "json"
)

func Stringer(name string, value fmt.Stringer) slog.Attr {
	return slog.String(name, value.String())
}

// New builds the process logger. Text output goes through tint, anything
// else is plain slog JSON.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	if strings.EqualFold(format, FormatJSON) {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
	}))
}

func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("level.UnmarshalText: %w", err)
	}

	return level, nil
}
