package recorder

import (
	"context"
	"time"

	"github.com/goodnatureofminers/workernode-dashboard/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Source reads the chain head and worker node submissions.
	Source interface {
		CurrentBlock(ctx context.Context) (uint64, error)
		ActiveRewardPeriod(ctx context.Context) (model.RewardPeriodInfo, error)
		Submissions(ctx context.Context, namespace model.Namespace, periodIndex uint64) ([]model.Submission, error)
	}

	// ClickhouseRepository persists submission snapshots.
	ClickhouseRepository interface {
		LatestRecordedBlock(ctx context.Context, namespace model.Namespace) (uint64, error)
		InsertSubmissionSnapshots(ctx context.Context, snapshots []model.SubmissionSnapshot) error
	}

	// Metrics observes recorder iterations.
	Metrics interface {
		ObserveIteration(err error, rows int, block uint64, started time.Time)
		ObserveSkip()
	}
)
