package recorder

import "time"

const (
	// DefaultBlockInterval is one vote window, 900 seconds at 12 seconds per block.
	DefaultBlockInterval uint64 = 75

	defaultPollInterval         = 1 * time.Minute
	defaultErrorBackoff         = 5 * time.Second
	defaultFlushSize            = 1000
	defaultFlushInterval        = 1 * time.Second
	defaultFlushRPS             = 10
	defaultThreshold     uint32 = 60
)
