// Package lifecycle holds shared values for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start and stop hook.
const DefaultTimeout = 15 * time.Second
