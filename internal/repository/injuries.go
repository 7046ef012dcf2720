package repository

import (
	"context"
	"fmt"

	"nba_dfs/maintenance/internal/models"
)

// InjuryRepository handles injuries database operations
type InjuryRepository struct {
	db *Database
}

// GetAll retrieves every injuries row, ordered by id.
func (r *InjuryRepository) GetAll(ctx context.Context) ([]models.Injury, error) {
	query := `
		SELECT id, player, team, status, note, reported_at
		FROM injuries
		ORDER BY id
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get injuries: %w", err)
	}
	defer rows.Close()

	var injuries []models.Injury
	for rows.Next() {
		var inj models.Injury
		err := rows.Scan(&inj.ID, &inj.Player, &inj.Team, &inj.Status, &inj.Note, &inj.ReportedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan injuries row: %w", err)
		}
		injuries = append(injuries, inj)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating injuries: %w", err)
	}

	return injuries, nil
}
