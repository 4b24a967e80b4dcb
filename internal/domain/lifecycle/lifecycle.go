// Package lifecycle defines shared startup and shutdown budgets.
package lifecycle

import "time"

// DefaultTimeout bounds Fx start and stop hooks.
const DefaultTimeout = 30 * time.Second
