// Package lifecycle holds shared timing constants for startup and
// shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start/stop operations.
const DefaultTimeout = 10 * time.Second
