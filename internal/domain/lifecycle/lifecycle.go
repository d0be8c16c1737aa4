// Package lifecycle holds shared timings for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start-up pings and graceful shutdown of a single component.
const DefaultTimeout = 10 * time.Second
