// Package modules starts long-running servers inside an errgroup and stops
// them when the group context is cancelled.
package modules

import "shipquote/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
