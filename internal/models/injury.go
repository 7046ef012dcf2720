package models

import "time"

// Injury is one row of the injuries table. Player names arrive from
// free-text feeds and are not guaranteed to be canonical.
type Injury struct {
	ID         int       `db:"id"`
	Player     string    `db:"player"`
	Team       string    `db:"team"`
	Status     string    `db:"status"`
	Note       string    `db:"note"`
	ReportedAt time.Time `db:"reported_at"`
}
