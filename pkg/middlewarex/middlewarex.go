// Package middlewarex holds the HTTP middleware chain shared by every
// public handler: trace id, request-scoped logger, request/response dumps
// and panic recovery.
package middlewarex

import "shipquote/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
