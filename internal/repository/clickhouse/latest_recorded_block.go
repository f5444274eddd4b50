package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/workernode-dashboard/internal/model"
)

// LatestRecordedBlock returns the highest block a snapshot was taken at for the
// namespace, or zero when nothing was recorded yet.
func (r *Repository) LatestRecordedBlock(ctx context.Context, namespace model.Namespace) (_ uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("latest_recorded_block", namespace, err, start)
	}()

	const query = `
SELECT coalesce(max(block_number), toUInt64(0)) AS latest_block
FROM submission_snapshots
WHERE namespace = ?`

	rows, err := r.conn.Query(ctx, query, string(namespace))
	if err != nil {
		return 0, fmt.Errorf("query latest recorded block: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var block uint64
	if !rows.Next() {
		return 0, fmt.Errorf("latest recorded block not found")
	}

	if err = rows.Scan(&block); err != nil {
		return 0, fmt.Errorf("scan latest recorded block: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate latest recorded block: %w", err)
	}

	return block, nil
}
