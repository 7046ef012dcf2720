package models

import "time"

// NewsItem is one row of the news table.
type NewsItem struct {
	ID          int       `db:"id"`
	Player      string    `db:"player"`
	Headline    string    `db:"headline"`
	Source      string    `db:"source"`
	PublishedAt time.Time `db:"published_at"`
}
