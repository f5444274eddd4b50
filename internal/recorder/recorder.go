// Package recorder periodically snapshots the submission count of every
// account in the active reward period into ClickHouse.
package recorder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/workernode-dashboard/internal/estimator"
	"github.com/goodnatureofminers/workernode-dashboard/internal/model"
	"github.com/goodnatureofminers/workernode-dashboard/pkg/batcher"
	"github.com/goodnatureofminers/workernode-dashboard/pkg/safe"
	"go.uber.org/zap"
)

// Config tunes the recorder. Zero values fall back to defaults.
type Config struct {
	Namespace model.Namespace
	Threshold uint32
	// BlockInterval is the minimum head advance between two recordings.
	BlockInterval uint64
	PollInterval  time.Duration
	ErrorBackoff  time.Duration
	FlushSize     int
	FlushRPS      int
}

func (c Config) withDefaults() Config {
	if c.Namespace == "" {
		c.Namespace = model.DefaultNamespace
	}
	if c.Threshold == 0 {
		c.Threshold = defaultThreshold
	}
	if c.BlockInterval == 0 {
		c.BlockInterval = DefaultBlockInterval
	}
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	if c.ErrorBackoff <= 0 {
		c.ErrorBackoff = defaultErrorBackoff
	}
	if c.FlushSize <= 0 {
		c.FlushSize = defaultFlushSize
	}
	if c.FlushRPS <= 0 {
		c.FlushRPS = defaultFlushRPS
	}
	return c
}

// Service records submission snapshots whenever the chain head has moved far
// enough since the last recording.
type Service struct {
	source  Source
	repo    ClickhouseRepository
	metrics Metrics
	cfg     Config
	logger  *zap.Logger
	sleep   func(context.Context, time.Duration) error
	now     func() time.Time

	lastBlock uint64
	resumed   bool
}

// NewService builds a Service with dependencies.
func NewService(
	source Source,
	repo ClickhouseRepository,
	metrics Metrics,
	cfg Config,
	logger *zap.Logger,
) (*Service, error) {
	if metrics == nil {
		return nil, errors.New("recorder metrics is required")
	}
	cfg = cfg.withDefaults()

	return &Service{
		source:  source,
		repo:    repo,
		metrics: metrics,
		cfg:     cfg,
		logger:  logger.With(zap.String("namespace", string(cfg.Namespace))),
		sleep:   sleepWithContext,
		now:     time.Now,
	}, nil
}

// Run records snapshots until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.cfg.ErrorBackoff))
			if sleepErr := s.sleep(ctx, s.cfg.ErrorBackoff); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *Service) run(ctx context.Context) error {
	if !s.resumed {
		last, err := s.repo.LatestRecordedBlock(ctx, s.cfg.Namespace)
		if err != nil {
			return fmt.Errorf("latest recorded block: %w", err)
		}
		s.lastBlock = last
		s.resumed = true
		s.logger.Info("resuming recorder", zap.Uint64("last_block", last))
	}

	head, err := s.source.CurrentBlock(ctx)
	if err != nil {
		return fmt.Errorf("current block: %w", err)
	}

	if s.lastBlock != 0 && head < s.lastBlock+s.cfg.BlockInterval {
		s.metrics.ObserveSkip()
		s.logger.Debug("head has not advanced enough; sleeping",
			zap.Uint64("head", head),
			zap.Uint64("last_block", s.lastBlock),
			zap.Duration("sleep", s.cfg.PollInterval),
		)
		return s.sleep(ctx, s.cfg.PollInterval)
	}

	started := time.Now()
	rows, err := s.Record(ctx, head)
	s.metrics.ObserveIteration(err, rows, head, started)
	if err != nil {
		return err
	}
	s.lastBlock = head
	s.logger.Info("recorded snapshots", zap.Uint64("head", head), zap.Int("rows", rows))

	return s.sleep(ctx, s.cfg.PollInterval)
}

// Record writes one snapshot per submitting account of the active period as
// seen at head and returns the number of rows written.
func (s *Service) Record(ctx context.Context, head uint64) (int, error) {
	info, err := s.source.ActiveRewardPeriod(ctx)
	if err != nil {
		return 0, fmt.Errorf("active reward period: %w", err)
	}

	current, err := safe.Int64(head)
	if err != nil {
		return 0, err
	}
	progress, err := estimator.ComputeProgress(int64(info.FirstBlock), int64(info.Length), current)
	if err != nil {
		return 0, fmt.Errorf("reward period %d: %w", info.Index, err)
	}

	submissions, err := s.source.Submissions(ctx, s.cfg.Namespace, info.Index)
	if err != nil {
		return 0, fmt.Errorf("submissions: %w", err)
	}
	if len(submissions) == 0 {
		return 0, nil
	}

	writer := batcher.New(s.logger.Named("snapshotBatcher"), s.repo.InsertSubmissionSnapshots, batcher.Config{
		FlushSize:     s.cfg.FlushSize,
		FlushInterval: defaultFlushInterval,
		RPS:           s.cfg.FlushRPS,
	})
	writer.Start(ctx)

	recordedAt := s.now().UTC()
	for _, sub := range submissions {
		status := estimator.ClassifyVoteStatus(int64(sub.Votes), int64(s.cfg.Threshold), progress.RemainingSeconds)
		snapshot := model.SubmissionSnapshot{
			Namespace:   s.cfg.Namespace,
			PeriodIndex: info.Index,
			Account:     sub.Account.Hex(),
			Votes:       sub.Votes,
			Threshold:   s.cfg.Threshold,
			Status:      status.String(),
			BlockNumber: head,
			RecordedAt:  recordedAt,
		}
		if err := writer.Add(ctx, snapshot); err != nil {
			return 0, errors.Join(fmt.Errorf("queue snapshot: %w", err), writer.Stop())
		}
	}

	if err := writer.Stop(); err != nil {
		return 0, fmt.Errorf("write snapshots: %w", err)
	}
	return len(submissions), nil
}
