// Package lifecycle holds timing constants shared by fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook (ping, shutdown, close).
const DefaultTimeout = 10 * time.Second
