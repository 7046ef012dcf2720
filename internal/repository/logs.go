package repository

import (
	"context"
	"fmt"
	"time"

	"nba_dfs/maintenance/internal/integrity"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// LogRepository persists integrity-check findings. The checker itself
// never touches the database; persisting its report is the caller's job.
type LogRepository struct {
	db *Database
}

// SaveDiscrepancies appends the discrepancy log to integrity_errors.
func (r *LogRepository) SaveDiscrepancies(ctx context.Context, checkedAt time.Time, recs []integrity.Discrepancy) error {
	if len(recs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, rec := range recs {
		batch.Queue(
			`INSERT INTO integrity_errors (checked_at, table_name, data_id, info) VALUES ($1, $2, $3, $4)`,
			checkedAt, rec.Table, rec.ID, rec.Info,
		)
	}

	results := r.db.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for range recs {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to save discrepancy log: %w", err)
		}
	}

	log.Info().Int("count", len(recs)).Msg("Discrepancy log saved")
	return nil
}

// SaveNearDuplicates appends the near-duplicate name log to similar_name_log.
func (r *LogRepository) SaveNearDuplicates(ctx context.Context, checkedAt time.Time, recs []integrity.NearDuplicate) error {
	if len(recs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, rec := range recs {
		batch.Queue(
			`INSERT INTO similar_name_log (checked_at, name1, name2, dist) VALUES ($1, $2, $3, $4)`,
			checkedAt, rec.Name1, rec.Name2, rec.Distance,
		)
	}

	results := r.db.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for range recs {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to save near-duplicate log: %w", err)
		}
	}

	log.Info().Int("count", len(recs)).Msg("Near-duplicate name log saved")
	return nil
}
