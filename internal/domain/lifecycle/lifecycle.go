// Package lifecycle holds shared application lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of long-lived components.
const DefaultTimeout = 10 * time.Second
