package models

import "time"

// PlayerStat is one player's line for one game, as stored in playerstats.
// TSID links the row to the teamstats record for the same team and game.
type PlayerStat struct {
	ID       int       `db:"id"`
	GID      string    `db:"gid"`
	GameDate time.Time `db:"gd"`
	Season   int       `db:"season"`
	Team     string    `db:"team"`
	Opp      string    `db:"opp"`
	Player   string    `db:"player"`
	Starter  bool      `db:"starter"`
	TSID     int       `db:"tsid"`

	Mins int `db:"mins"`
	Pts  int `db:"pts"`
	TReb int `db:"treb"`
	Ast  int `db:"ast"`
	Blk  int `db:"blk"`
	Stl  int `db:"stl"`
	Tov  int `db:"tov"`
}

// FanDuelPoints computes the FanDuel fantasy score for the line.
func (p *PlayerStat) FanDuelPoints() float64 {
	return float64(p.Pts) +
		1.2*float64(p.TReb) +
		1.5*float64(p.Ast) +
		3*float64(p.Blk) +
		3*float64(p.Stl) -
		float64(p.Tov)
}
