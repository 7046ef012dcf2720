package models

import (
	"fmt"
	"time"
)

// TeamStat is one team's aggregate line for one game, as stored in
// teamstats. Each game produces exactly two rows sharing a GID.
type TeamStat struct {
	ID       int       `db:"id"`
	GID      string    `db:"gid"`
	GameDate time.Time `db:"gd"`
	Season   int       `db:"season"`
	Team     string    `db:"team"`
	Opp      string    `db:"opp"`
	Home     bool      `db:"home"`
	Playoff  bool      `db:"playoff"`
	OT       int       `db:"ot"`
	Pts      int       `db:"pts"`

	// Opening lines from the sportsbook feed.
	OpenSpread float64 `db:"open_spread"`
	OpenPts    float64 `db:"open_pts"`
}

// CreateGID builds the game identifier linking a teamstats pair and the
// playerstats rows of one contest, e.g. "181025_BOS_NYK".
func CreateGID(gameDate time.Time, homeTeam, awayTeam string) string {
	return fmt.Sprintf("%s_%s_%s", gameDate.Format("060102"), homeTeam, awayTeam)
}
