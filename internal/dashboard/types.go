// Package dashboard assembles the reward period view: progress of the active
// period, one row per submitting account and the chart aggregates.
package dashboard

import (
	"context"
	"time"

	"github.com/goodnatureofminers/workernode-dashboard/internal/estimator"
	"github.com/goodnatureofminers/workernode-dashboard/internal/model"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Source reads worker node pallet state.
type Source interface {
	CurrentBlock(ctx context.Context) (uint64, error)
	ActiveRewardPeriod(ctx context.Context) (model.RewardPeriodInfo, error)
	Submissions(ctx context.Context, namespace model.Namespace, periodIndex uint64) ([]model.Submission, error)
	OperatorInventory(ctx context.Context) (map[model.AccountID]model.Operator, error)
	AccountBalances(ctx context.Context, accounts []model.AccountID) ([]model.AccountBalance, error)
}

// Preferences provides the user settings applied to a view.
type Preferences interface {
	Favorites(ctx context.Context) (map[model.AccountID]struct{}, error)
	Columns(ctx context.Context) (map[string]bool, error)
}

// Metrics observes view assembly.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

// Period is the active reward period measured against the chain head.
type Period struct {
	model.RewardPeriodInfo
	CurrentBlock uint64             `json:"currentBlock"`
	Progress     estimator.Progress `json:"progress"`
}

// Row is one submitting account.
type Row struct {
	Account          model.AccountID      `json:"-"`
	Address          string               `json:"account"`
	Name             string               `json:"name"`
	Location         string               `json:"location"`
	Votes            uint32               `json:"votes"`
	Status           estimator.VoteStatus `json:"status"`
	Color            string               `json:"color"`
	VotesPercent     float64              `json:"votesPercent"`
	ThresholdPercent float64              `json:"thresholdPercent"`
	Balance          decimal.Decimal      `json:"balance"`
	Stake            decimal.Decimal      `json:"stake"`
	Favorite         bool                 `json:"favorite"`
}

// LocationCount is the number of inventory operators in one legal location.
type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// View is everything the dashboard renders.
type View struct {
	Namespace     model.Namespace     `json:"namespace"`
	Threshold     uint32              `json:"threshold"`
	MaxVotes      uint32              `json:"maxVotes"`
	Period        Period              `json:"period"`
	Rows          []Row               `json:"rows"`
	TotalAccounts int                 `json:"totalAccounts"`
	Locations     []LocationCount     `json:"locations"`
	Histogram     estimator.Histogram `json:"histogram"`
	Columns       map[string]bool     `json:"columns"`
	Query         Query               `json:"query"`
	GeneratedAt   time.Time           `json:"generatedAt"`
}
