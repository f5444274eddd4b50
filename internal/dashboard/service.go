package dashboard

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/goodnatureofminers/workernode-dashboard/internal/estimator"
	"github.com/goodnatureofminers/workernode-dashboard/internal/model"
	"github.com/goodnatureofminers/workernode-dashboard/internal/substrate"
	"github.com/goodnatureofminers/workernode-dashboard/pkg/safe"
	"github.com/goodnatureofminers/workernode-dashboard/pkg/workerpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrChain wraps failures reading chain state.
var ErrChain = errors.New("chain query failed")

// Service builds dashboard views.
type Service struct {
	source  Source
	prefs   Preferences
	metrics Metrics
	cfg     Config
	logger  *zap.Logger
	now     func() time.Time
}

// NewService constructs a Service.
func NewService(source Source, prefs Preferences, metrics Metrics, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		source:  source,
		prefs:   prefs,
		metrics: metrics,
		cfg:     cfg.withDefaults(),
		logger:  logger.Named("dashboard"),
		now:     time.Now,
	}
}

// RewardPeriod returns the active reward period measured against the chain head.
func (s *Service) RewardPeriod(ctx context.Context) (_ Period, err error) {
	defer func(started time.Time) {
		s.metrics.Observe("reward_period", err, started)
	}(time.Now())

	var (
		info model.RewardPeriodInfo
		head uint64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		info, err = s.activePeriod(gctx)
		return err
	})
	g.Go(func() (err error) {
		head, err = s.currentBlock(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Period{}, err
	}

	return newPeriod(info, head)
}

// Build assembles the view for query.
func (s *Service) Build(ctx context.Context, query Query) (_ View, err error) {
	defer func(started time.Time) {
		s.metrics.Observe("build", err, started)
	}(time.Now())

	query, err = query.normalize()
	if err != nil {
		return View{}, err
	}

	var (
		info        model.RewardPeriodInfo
		head        uint64
		submissions []model.Submission
		inventory   map[model.AccountID]model.Operator
		favorites   map[model.AccountID]struct{}
		columns     map[string]bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		info, err = s.activePeriod(gctx)
		if err != nil {
			return err
		}
		submissions, err = s.source.Submissions(gctx, s.cfg.Namespace, info.Index)
		if err != nil {
			return fmt.Errorf("%w: submissions: %w", ErrChain, err)
		}
		return nil
	})
	g.Go(func() (err error) {
		head, err = s.currentBlock(gctx)
		return err
	})
	g.Go(func() (err error) {
		inventory, err = s.source.OperatorInventory(gctx)
		if err != nil {
			return fmt.Errorf("%w: operator inventory: %w", ErrChain, err)
		}
		return nil
	})
	g.Go(func() (err error) {
		favorites, err = s.prefs.Favorites(gctx)
		return err
	})
	g.Go(func() (err error) {
		columns, err = s.prefs.Columns(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return View{}, err
	}

	period, err := newPeriod(info, head)
	if err != nil {
		return View{}, err
	}

	balances, err := s.balances(ctx, submissions)
	if err != nil {
		return View{}, err
	}

	rows, err := s.rows(submissions, inventory, balances, favorites, period.Progress.RemainingSeconds)
	if err != nil {
		return View{}, err
	}

	votes := make([]uint32, len(rows))
	for i, row := range rows {
		votes[i] = row.Votes
	}
	histogram, err := estimator.AggregateIntoBuckets(votes, s.cfg.BucketWidth, s.cfg.BucketMax)
	if err != nil {
		return View{}, err
	}

	total := len(rows)
	rows = query.apply(rows)

	s.logger.Debug("view built",
		zap.Uint64("period", info.Index),
		zap.Uint64("head", head),
		zap.Int("accounts", total),
		zap.Int("shown", len(rows)),
	)

	return View{
		Namespace:     s.cfg.Namespace,
		Threshold:     s.cfg.Threshold,
		MaxVotes:      s.cfg.MaxVotes,
		Period:        period,
		Rows:          rows,
		TotalAccounts: total,
		Locations:     countLocations(inventory),
		Histogram:     histogram,
		Columns:       columns,
		Query:         query,
		GeneratedAt:   s.now().UTC(),
	}, nil
}

func (s *Service) activePeriod(ctx context.Context) (model.RewardPeriodInfo, error) {
	info, err := s.source.ActiveRewardPeriod(ctx)
	if err != nil {
		return model.RewardPeriodInfo{}, fmt.Errorf("%w: active reward period: %w", ErrChain, err)
	}
	return info, nil
}

func (s *Service) currentBlock(ctx context.Context) (uint64, error) {
	head, err := s.source.CurrentBlock(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: current block: %w", ErrChain, err)
	}
	return head, nil
}

func (s *Service) balances(ctx context.Context, submissions []model.Submission) (map[model.AccountID]model.AccountBalance, error) {
	chunks := make([][]model.AccountID, 0, len(submissions)/s.cfg.BalanceChunk+1)
	for start := 0; start < len(submissions); start += s.cfg.BalanceChunk {
		end := min(start+s.cfg.BalanceChunk, len(submissions))
		chunk := make([]model.AccountID, 0, end-start)
		for _, sub := range submissions[start:end] {
			chunk = append(chunk, sub.Account)
		}
		chunks = append(chunks, chunk)
	}

	results, err := workerpool.Map(ctx, s.cfg.BalanceWorkers, chunks,
		func(ctx context.Context, accounts []model.AccountID) ([]model.AccountBalance, error) {
			return s.source.AccountBalances(ctx, accounts)
		})
	if err != nil {
		return nil, fmt.Errorf("%w: account balances: %w", ErrChain, err)
	}

	out := make(map[model.AccountID]model.AccountBalance, len(submissions))
	for _, chunk := range results {
		for _, balance := range chunk {
			out[balance.Account] = balance
		}
	}
	return out, nil
}

func (s *Service) rows(
	submissions []model.Submission,
	inventory map[model.AccountID]model.Operator,
	balances map[model.AccountID]model.AccountBalance,
	favorites map[model.AccountID]struct{},
	remainingSeconds int64,
) ([]Row, error) {
	rows := make([]Row, 0, len(submissions))
	for _, sub := range submissions {
		address, err := substrate.EncodeSS58(sub.Account, s.cfg.SS58Prefix)
		if err != nil {
			return nil, err
		}

		status := estimator.ClassifyVoteStatus(int64(sub.Votes), int64(s.cfg.Threshold), remainingSeconds)
		row := Row{
			Account:          sub.Account,
			Address:          address,
			Name:             unknown,
			Location:         unknown,
			Votes:            sub.Votes,
			Status:           status,
			Color:            status.Color(),
			VotesPercent:     percentOf(sub.Votes, s.cfg.MaxVotes),
			ThresholdPercent: percentOf(s.cfg.Threshold, s.cfg.MaxVotes),
		}
		if op, ok := inventory[sub.Account]; ok {
			row.Name = orUnknown(op.FriendlyName)
			row.Location = orUnknown(op.LegalLocation)
		}
		if balance, ok := balances[sub.Account]; ok {
			row.Balance = balance.Free
			row.Stake = balance.Reserved
		}
		_, row.Favorite = favorites[sub.Account]
		rows = append(rows, row)
	}
	return rows, nil
}

func newPeriod(info model.RewardPeriodInfo, head uint64) (Period, error) {
	current, err := safe.Int64(head)
	if err != nil {
		return Period{}, fmt.Errorf("%w: current block: %w", ErrChain, err)
	}
	progress, err := estimator.ComputeProgress(int64(info.FirstBlock), int64(info.Length), current)
	if err != nil {
		return Period{}, fmt.Errorf("reward period %d: %w", info.Index, err)
	}
	return Period{
		RewardPeriodInfo: info,
		CurrentBlock:     head,
		Progress:         progress,
	}, nil
}

// countLocations counts inventory operators per legal location, most common
// first and ties by name.
func countLocations(inventory map[model.AccountID]model.Operator) []LocationCount {
	counts := make(map[string]int)
	for _, op := range inventory {
		counts[orUnknown(op.LegalLocation)]++
	}

	out := make([]LocationCount, 0, len(counts))
	for location, count := range counts {
		out = append(out, LocationCount{Location: location, Count: count})
	}
	slices.SortFunc(out, func(a, b LocationCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Location, b.Location)
	})
	return out
}

// percentOf is the bar width for v out of max, capped at 100.
func percentOf(v, max uint32) float64 {
	if max == 0 {
		return 0
	}
	p := float64(v) / float64(max) * 100
	return math.Min(math.Round(p*100)/100, 100)
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}
