package repository

import (
	"context"
	"fmt"

	"nba_dfs/maintenance/internal/models"

	"github.com/rs/zerolog/log"
)

// PlayerStatsRepository handles playerstats database operations
type PlayerStatsRepository struct {
	db *Database
}

// GetBySeasons retrieves all playerstats rows for the given seasons,
// ordered by id so snapshots are reproducible.
func (r *PlayerStatsRepository) GetBySeasons(ctx context.Context, seasons []int) ([]models.PlayerStat, error) {
	query := `
		SELECT id, gid, gd, season, team, opp, player, starter, tsid,
		       mins, pts, treb, ast, blk, stl, tov
		FROM playerstats
		WHERE season = ANY($1)
		ORDER BY id
	`

	rows, err := r.db.Pool.Query(ctx, query, seasons)
	if err != nil {
		return nil, fmt.Errorf("failed to get playerstats: %w", err)
	}
	defer rows.Close()

	var stats []models.PlayerStat
	for rows.Next() {
		var s models.PlayerStat
		err := rows.Scan(
			&s.ID, &s.GID, &s.GameDate, &s.Season, &s.Team, &s.Opp,
			&s.Player, &s.Starter, &s.TSID,
			&s.Mins, &s.Pts, &s.TReb, &s.Ast, &s.Blk, &s.Stl, &s.Tov,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan playerstats row: %w", err)
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating playerstats: %w", err)
	}

	log.Debug().
		Ints("seasons", seasons).
		Int("count", len(stats)).
		Msg("Playerstats snapshot loaded")

	return stats, nil
}

// GetPlayerNames retrieves the canonical-name universe: distinct player
// names for the given seasons, ordered alphabetically. The ordering is
// the documented tie-break for first-match resolution scans.
func (r *PlayerStatsRepository) GetPlayerNames(ctx context.Context, seasons []int) ([]string, error) {
	query := `
		SELECT DISTINCT player
		FROM playerstats
		WHERE season = ANY($1)
		ORDER BY player
	`

	rows, err := r.db.Pool.Query(ctx, query, seasons)
	if err != nil {
		return nil, fmt.Errorf("failed to get player names: %w", err)
	}
	defer rows.Close()

	var players []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan player name: %w", err)
		}
		players = append(players, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating player names: %w", err)
	}

	return players, nil
}
