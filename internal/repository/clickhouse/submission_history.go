package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/workernode-dashboard/internal/model"
)

// DefaultHistoryLimit caps SubmissionHistory when no limit is given.
const DefaultHistoryLimit = 500

// SubmissionHistory returns the snapshots recorded for account, latest first.
func (r *Repository) SubmissionHistory(
	ctx context.Context,
	namespace model.Namespace,
	account string,
	limit int,
) (_ []model.SubmissionSnapshot, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("submission_history", namespace, err, start)
	}()

	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	const query = `
SELECT
	period_index,
	votes,
	threshold,
	status,
	block_number,
	recorded_at
FROM submission_snapshots FINAL
WHERE namespace = ? AND account = ?
ORDER BY block_number DESC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, string(namespace), account, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("query submission history: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var out []model.SubmissionSnapshot
	for rows.Next() {
		s := model.SubmissionSnapshot{Namespace: namespace, Account: account}
		if err = rows.Scan(
			&s.PeriodIndex,
			&s.Votes,
			&s.Threshold,
			&s.Status,
			&s.BlockNumber,
			&s.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("scan submission snapshot: %w", err)
		}
		out = append(out, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submission history: %w", err)
	}

	return out, nil
}
