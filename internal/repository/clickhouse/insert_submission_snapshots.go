package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/workernode-dashboard/internal/model"
)

// InsertSubmissionSnapshots stores snapshot rows in ClickHouse.
func (r *Repository) InsertSubmissionSnapshots(ctx context.Context, snapshots []model.SubmissionSnapshot) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_submission_snapshots", firstNamespace(snapshots), err, start)
	}()

	if len(snapshots) == 0 {
		return nil
	}

	const query = `
INSERT INTO submission_snapshots (
	namespace,
	period_index,
	account,
	votes,
	threshold,
	status,
	block_number,
	recorded_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare snapshots batch: %w", err)
	}

	for _, s := range snapshots {
		if err = batch.Append(
			string(s.Namespace),
			s.PeriodIndex,
			s.Account,
			s.Votes,
			s.Threshold,
			s.Status,
			s.BlockNumber,
			s.RecordedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append snapshot: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert snapshots: %w", err)
	}
	return nil
}

func firstNamespace(snapshots []model.SubmissionSnapshot) model.Namespace {
	if len(snapshots) == 0 {
		return ""
	}
	return snapshots[0].Namespace
}
