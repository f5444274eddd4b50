package model

import "time"

// SubmissionSnapshot is a recorded submission count of an account at a block.
type SubmissionSnapshot struct {
	Namespace   Namespace `json:"namespace"`
	PeriodIndex uint64    `json:"periodIndex"`
	Account     string    `json:"account"`
	Votes       uint32    `json:"votes"`
	Threshold   uint32    `json:"threshold"`
	Status      string    `json:"status"`
	BlockNumber uint64    `json:"blockNumber"`
	RecordedAt  time.Time `json:"recordedAt"`
}
