package estimator

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPeriod is returned when a reward period has a non-positive length.
var ErrInvalidPeriod = errors.New("invalid reward period")

// Progress is the time and completion estimate of a reward period at a given block.
// Values are not clamped: a head outside [first, last] yields a percent outside
// [0, 100] and negative remaining time once the period has elapsed.
type Progress struct {
	LastBlock        int64   `json:"lastBlock"`
	ProgressPercent  float64 `json:"progressPercent"`
	RemainingBlocks  int64   `json:"remainingBlocks"`
	RemainingSeconds int64   `json:"remainingSeconds"`
	RemainingHours   int64   `json:"remainingHours"`
	RemainingMinutes int64   `json:"remainingMinutes"`
}

// ComputeProgress estimates how far currentBlock is into the period starting at
// firstBlock and spanning length blocks.
func ComputeProgress(firstBlock, length, currentBlock int64) (Progress, error) {
	if length <= 0 {
		return Progress{}, fmt.Errorf("%w: length %d", ErrInvalidPeriod, length)
	}

	lastBlock := firstBlock + length
	percent := float64(currentBlock-firstBlock) / float64(length) * 100
	remainingBlocks := lastBlock - currentBlock
	remainingSeconds := remainingBlocks * SecondsPerBlock

	return Progress{
		LastBlock:        lastBlock,
		ProgressPercent:  math.Round(percent*100) / 100,
		RemainingBlocks:  remainingBlocks,
		RemainingSeconds: remainingSeconds,
		RemainingHours:   floorDiv(remainingSeconds, secondsPerHour),
		// Go's % keeps the sign of the dividend, so a negative remainder floors
		// toward the previous minute.
		RemainingMinutes: floorDiv(remainingSeconds%secondsPerHour, secondsPerMinute),
	}, nil
}
