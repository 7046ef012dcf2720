package repository

import (
	"context"
	"fmt"

	"nba_dfs/maintenance/internal/metrics"

	"github.com/rs/zerolog/log"
)

// Tables whose player column the update pipeline may rewrite. Table
// names are interpolated into SQL, so anything outside this set is
// rejected up front.
var renameableTables = map[string]bool{
	"injuries":    true,
	"news":        true,
	"playerstats": true,
}

// NameUpdate is one pending rewrite of a row's player column.
type NameUpdate struct {
	Table   string
	ID      int
	OldName string
	NewName string
}

// ExecResult records the outcome of one executed update statement.
type ExecResult struct {
	Update NameUpdate
	Err    error
}

// UpdateRepository builds and executes the SQL mutations that bring
// player names into canonical form.
type UpdateRepository struct {
	db *Database
}

// FindRenameCandidates scans a table for rows whose player name has a
// known canonical replacement. For playerstats the scan is limited to
// the given seasons; other tables are scanned in full.
func (r *UpdateRepository) FindRenameCandidates(ctx context.Context, table string, pairs map[string]string, seasons []int) ([]NameUpdate, error) {
	if !renameableTables[table] {
		return nil, fmt.Errorf("table %q is not eligible for name updates", table)
	}

	query := fmt.Sprintf(`SELECT id, player FROM %s ORDER BY id`, table)
	args := []interface{}{}
	if table == "playerstats" {
		query = `SELECT id, player FROM playerstats WHERE season = ANY($1) ORDER BY id`
		args = append(args, seasons)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s for rename candidates: %w", table, err)
	}
	defer rows.Close()

	var updates []NameUpdate
	for rows.Next() {
		var id int
		var player string
		if err := rows.Scan(&id, &player); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		newName, ok := pairs[player]
		if !ok {
			continue
		}
		updates = append(updates, NameUpdate{
			Table:   table,
			ID:      id,
			OldName: player,
			NewName: newName,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", table, err)
	}

	log.Info().
		Str("table", table).
		Int("count", len(updates)).
		Msg("Rename candidates found")

	return updates, nil
}

// ApplyNameUpdates executes every update inside a single transaction,
// recording per-statement outcomes. Individual failures are isolated
// with savepoints so the rest of the batch still runs. The transaction
// commits only when every statement succeeded, unless force is set.
func (r *UpdateRepository) ApplyNameUpdates(ctx context.Context, updates []NameUpdate, force bool) ([]ExecResult, error) {
	if len(updates) == 0 {
		log.Info().Msg("No name updates to execute")
		return nil, nil
	}

	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	results := make([]ExecResult, 0, len(updates))
	failures := 0

	for i, u := range updates {
		if !renameableTables[u.Table] {
			return results, fmt.Errorf("table %q is not eligible for name updates", u.Table)
		}

		sp := fmt.Sprintf("name_update_%d", i)
		if _, err := tx.Exec(ctx, "SAVEPOINT "+sp); err != nil {
			return results, fmt.Errorf("failed to create savepoint: %w", err)
		}

		stmt := fmt.Sprintf(`UPDATE %s SET player = $1 WHERE id = $2`, u.Table)
		_, execErr := tx.Exec(ctx, stmt, u.NewName, u.ID)
		if execErr != nil {
			failures++
			metrics.NameUpdatesTotal.WithLabelValues(u.Table, "failure").Inc()
			log.Warn().
				Err(execErr).
				Str("table", u.Table).
				Int("id", u.ID).
				Str("old", u.OldName).
				Str("new", u.NewName).
				Msg("Name update failed")
			if _, err := tx.Exec(ctx, "ROLLBACK TO SAVEPOINT "+sp); err != nil {
				return results, fmt.Errorf("failed to roll back savepoint: %w", err)
			}
		} else {
			metrics.NameUpdatesTotal.WithLabelValues(u.Table, "success").Inc()
			if _, err := tx.Exec(ctx, "RELEASE SAVEPOINT "+sp); err != nil {
				return results, fmt.Errorf("failed to release savepoint: %w", err)
			}
		}

		results = append(results, ExecResult{Update: u, Err: execErr})
	}

	if failures > 0 && !force {
		return results, fmt.Errorf("%d of %d name updates failed, rolling back", failures, len(updates))
	}

	if err := tx.Commit(ctx); err != nil {
		return results, fmt.Errorf("failed to commit name updates: %w", err)
	}

	log.Info().
		Int("executed", len(updates)).
		Int("failed", failures).
		Msg("Name updates committed")

	return results, nil
}
