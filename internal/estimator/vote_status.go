package estimator

import "fmt"

// VoteStatus classifies an account's submissions against the reward threshold.
// The ordering Unreachable < Reachable < Achieved is relied upon by callers that
// compare statuses.
type VoteStatus int

const (
	// Unreachable means the threshold cannot be met in the remaining time.
	Unreachable VoteStatus = iota
	// Reachable means the threshold is not met yet but still can be.
	Reachable
	// Achieved means the threshold is met.
	Achieved
)

var voteStatusNames = map[VoteStatus]string{
	Unreachable: "unreachable",
	Reachable:   "reachable",
	Achieved:    "achieved",
}

var voteStatusColors = map[VoteStatus]string{
	Unreachable: "red",
	Reachable:   "yellow",
	Achieved:    "green",
}

// ClassifyVoteStatus compares currentVotes with threshold, assuming at most one
// additional vote every SecondsPerVote for the remaining time.
func ClassifyVoteStatus(currentVotes, threshold, remainingSeconds int64) VoteStatus {
	if currentVotes >= threshold {
		return Achieved
	}
	possible := floorDiv(remainingSeconds, SecondsPerVote)
	if currentVotes+possible >= threshold {
		return Reachable
	}
	return Unreachable
}

// String returns the lower-case status name.
func (s VoteStatus) String() string {
	if name, ok := voteStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("VoteStatus(%d)", int(s))
}

// Color returns the display color for the status.
func (s VoteStatus) Color() string {
	return voteStatusColors[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s VoteStatus) MarshalText() ([]byte, error) {
	name, ok := voteStatusNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown vote status %d", int(s))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *VoteStatus) UnmarshalText(text []byte) error {
	status, err := ParseVoteStatus(string(text))
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// ParseVoteStatus parses a status name as produced by String.
func ParseVoteStatus(name string) (VoteStatus, error) {
	for status, n := range voteStatusNames {
		if n == name {
			return status, nil
		}
	}
	return Unreachable, fmt.Errorf("unknown vote status %q", name)
}
