package transport

import (
	"context"

	"github.com/goodnatureofminers/workernode-dashboard/internal/dashboard"
	"github.com/goodnatureofminers/workernode-dashboard/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Dashboard interface {
		Build(ctx context.Context, query dashboard.Query) (dashboard.View, error)
		RewardPeriod(ctx context.Context) (dashboard.Period, error)
	}

	Preferences interface {
		Favorites(ctx context.Context) (map[model.AccountID]struct{}, error)
		SetFavorite(ctx context.Context, account model.AccountID, favorite bool) error
		Columns(ctx context.Context) (map[string]bool, error)
		SetColumnVisible(ctx context.Context, column string, visible bool) error
	}

	History interface {
		SubmissionHistory(ctx context.Context, namespace model.Namespace, account string, limit int) ([]model.SubmissionSnapshot, error)
	}
)
