package estimator

import (
	"errors"
	"fmt"
)

const (
	// DefaultBucketWidth is the vote range covered by one histogram bucket.
	DefaultBucketWidth = 5
	// DefaultBucketMax is the lower bound of the catch-all bucket.
	DefaultBucketMax = 100
)

// ErrInvalidBuckets is returned for a non-positive bucket width or maximum.
var ErrInvalidBuckets = errors.New("invalid bucket layout")

// Bucket counts votes in the half-open range [Lower, Upper). The catch-all
// bucket has Open set and no upper bound.
type Bucket struct {
	Label string `json:"label"`
	Lower uint32 `json:"lower"`
	Upper uint32 `json:"upper,omitempty"`
	Open  bool   `json:"open,omitempty"`
	Count int    `json:"count"`
}

// Histogram is an ordered list of buckets.
type Histogram []Bucket

// Counts returns the bucket counts keyed by label.
func (h Histogram) Counts() map[string]int {
	out := make(map[string]int, len(h))
	for _, b := range h {
		out[b.Label] = b.Count
	}
	return out
}

// AggregateIntoBuckets partitions votes into ranges of width starting at zero up
// to max, plus a "max+" bucket for votes at or above max.
func AggregateIntoBuckets(votes []uint32, width, max uint32) (Histogram, error) {
	if width == 0 || max == 0 {
		return nil, fmt.Errorf("%w: width %d, max %d", ErrInvalidBuckets, width, max)
	}

	hist := make(Histogram, 0, max/width+2)
	for lower := uint32(0); lower < max; lower += width {
		upper := lower + width
		if upper > max || upper < lower {
			upper = max
		}
		hist = append(hist, Bucket{
			Label: fmt.Sprintf("%d-%d", lower, upper-1),
			Lower: lower,
			Upper: upper,
		})
		if upper == max {
			break
		}
	}
	hist = append(hist, Bucket{Label: fmt.Sprintf("%d+", max), Lower: max, Open: true})

	for _, v := range votes {
		if v >= max {
			hist[len(hist)-1].Count++
			continue
		}
		hist[v/width].Count++
	}
	return hist, nil
}
