package repository

import (
	"context"
	"fmt"

	"nba_dfs/maintenance/internal/models"
)

// NewsRepository handles news database operations
type NewsRepository struct {
	db *Database
}

// GetAll retrieves every news row, ordered by id.
func (r *NewsRepository) GetAll(ctx context.Context) ([]models.NewsItem, error) {
	query := `
		SELECT id, player, headline, source, published_at
		FROM news
		ORDER BY id
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get news: %w", err)
	}
	defer rows.Close()

	var items []models.NewsItem
	for rows.Next() {
		var item models.NewsItem
		err := rows.Scan(&item.ID, &item.Player, &item.Headline, &item.Source, &item.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan news row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating news: %w", err)
	}

	return items, nil
}
