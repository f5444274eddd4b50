package dashboard

import (
	"github.com/goodnatureofminers/workernode-dashboard/internal/estimator"
	"github.com/goodnatureofminers/workernode-dashboard/internal/model"
)

const (
	// DefaultThreshold is the number of votes an account needs in a period.
	DefaultThreshold uint32 = 60
	// DefaultMaxVotes is the number of votes possible in a period.
	DefaultMaxVotes uint32 = 96

	defaultBalanceWorkers = 4
	defaultBalanceChunk   = 100

	unknown = "Unknown"
)

// Config tunes view assembly. Zero values fall back to defaults, except
// SS58Prefix where zero is a valid network.
type Config struct {
	Namespace      model.Namespace
	Threshold      uint32
	MaxVotes       uint32
	SS58Prefix     uint16
	BucketWidth    uint32
	BucketMax      uint32
	BalanceWorkers int
	BalanceChunk   int
}

func (c Config) withDefaults() Config {
	if c.Namespace == "" {
		c.Namespace = model.DefaultNamespace
	}
	if c.Threshold == 0 {
		c.Threshold = DefaultThreshold
	}
	if c.MaxVotes == 0 {
		c.MaxVotes = DefaultMaxVotes
	}
	if c.BucketWidth == 0 {
		c.BucketWidth = estimator.DefaultBucketWidth
	}
	if c.BucketMax == 0 {
		c.BucketMax = estimator.DefaultBucketMax
	}
	if c.BalanceWorkers <= 0 {
		c.BalanceWorkers = defaultBalanceWorkers
	}
	if c.BalanceChunk <= 0 {
		c.BalanceChunk = defaultBalanceChunk
	}
	return c
}
