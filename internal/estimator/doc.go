// Package estimator derives reward period progress, remaining time and
// vote threshold reachability from already decoded chain values.
package estimator

const (
	// SecondsPerBlock is the assumed block time of the chain.
	SecondsPerBlock int64 = 12
	// SecondsPerVote is the assumed cadence of worker node submissions (15 minutes).
	SecondsPerVote int64 = 900

	secondsPerHour   int64 = 3600
	secondsPerMinute int64 = 60
)

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
