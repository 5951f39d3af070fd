// Package lifecycle holds shared start/stop settings.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks such as pings, flushes and graceful shutdown.
const DefaultTimeout = 10 * time.Second
