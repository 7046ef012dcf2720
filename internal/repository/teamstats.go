package repository

import (
	"context"
	"fmt"

	"nba_dfs/maintenance/internal/models"

	"github.com/rs/zerolog/log"
)

// TeamStatsRepository handles teamstats database operations
type TeamStatsRepository struct {
	db *Database
}

// GetBySeasons retrieves all teamstats rows for the given seasons,
// ordered by id.
func (r *TeamStatsRepository) GetBySeasons(ctx context.Context, seasons []int) ([]models.TeamStat, error) {
	query := `
		SELECT id, gid, gd, season, team, opp, home, playoff, ot, pts,
		       open_spread, open_pts
		FROM teamstats
		WHERE season = ANY($1)
		ORDER BY id
	`

	rows, err := r.db.Pool.Query(ctx, query, seasons)
	if err != nil {
		return nil, fmt.Errorf("failed to get teamstats: %w", err)
	}
	defer rows.Close()

	var stats []models.TeamStat
	for rows.Next() {
		var s models.TeamStat
		err := rows.Scan(
			&s.ID, &s.GID, &s.GameDate, &s.Season, &s.Team, &s.Opp,
			&s.Home, &s.Playoff, &s.OT, &s.Pts,
			&s.OpenSpread, &s.OpenPts,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan teamstats row: %w", err)
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teamstats: %w", err)
	}

	log.Debug().
		Ints("seasons", seasons).
		Int("count", len(stats)).
		Msg("Teamstats snapshot loaded")

	return stats, nil
}
