package model

// RewardPeriodInfo is the decoded ActiveRewardPeriodInfo storage value.
type RewardPeriodInfo struct {
	Index      uint64 `json:"index"`
	FirstBlock uint32 `json:"firstBlock"`
	Length     uint32 `json:"length"`
}

// Submission is the number of votes an account has submitted in a period.
type Submission struct {
	Account AccountID
	Votes   uint32
}

// Operator is the static metadata an operator registered in the inventory.
type Operator struct {
	Account       AccountID
	FriendlyName  string
	LegalLocation string
}
