// Package integrity validates the cross-table invariants of the NBA
// database: each game's teamstats pair must be mutually consistent, each
// team's playerstats group must line up with its teamstats row, and
// player names across tables must resolve against the canonical
// universe.
package integrity

import (
	"fmt"
	"math"
	"sort"

	"nba_dfs/maintenance/internal/models"
	"nba_dfs/maintenance/internal/names"
)

// Boundary constraints on opening lines and the name-similarity
// threshold.
const (
	MaxOpenSpread  = 25.0
	MaxOpenPts     = 250.0
	MinOpenPts     = 150.0
	MaxLevenshtein = 4
)

// Snapshot carries the in-memory table copies one checker session
// inspects. The slices are read-only for the session's duration.
type Snapshot struct {
	PlayerStats []models.PlayerStat
	TeamStats   []models.TeamStat
	Injuries    []models.Injury
	News        []models.NewsItem
}

// Checker runs the invariant checks over one snapshot. Each group's
// checklist short-circuits on the first failing check so a single
// root-cause violation does not cascade into spurious findings.
type Checker struct {
	snap      Snapshot
	known     KnownSimilarPairs
	converter *names.Converter
	report    Report
}

// NewChecker builds a session over snap. The converter supplies the
// IsProblematic scan for the injuries and news tables.
func NewChecker(snap Snapshot, known KnownSimilarPairs, converter *names.Converter) *Checker {
	return &Checker{snap: snap, known: known, converter: converter}
}

// Run executes every inspection and returns the accumulated report.
func (c *Checker) Run() *Report {
	c.inspectPlayerStats()
	c.inspectTeamStats()
	c.inspectPlayerNames()
	c.inspectTableNames("injuries", injuryPlayers(c.snap.Injuries))
	c.inspectTableNames("news", newsPlayers(c.snap.News))
	return &c.report
}

func (c *Checker) log(table, id, info string) {
	c.report.Discrepancies = append(c.report.Discrepancies, Discrepancy{
		Table: table,
		ID:    id,
		Info:  info,
	})
}

// inspectTeamStats applies the team-pair checklist to the two rows
// sharing each game identifier. Groups are visited in sorted gid order
// so runs are reproducible.
func (c *Checker) inspectTeamStats() {
	groups := make(map[string][]models.TeamStat)
	for _, row := range c.snap.TeamStats {
		groups[row.GID] = append(groups[row.GID], row)
	}
	for _, gid := range sortedKeys(groups) {
		c.inspectGamePair(gid, groups[gid])
	}
}

func (c *Checker) inspectGamePair(gid string, rows []models.TeamStat) {
	fail := func(info string) {
		c.log("teamstats", fmt.Sprintf("gid = %s", gid), info)
	}

	if len(rows) != 2 {
		fail("Row count != 2")
		return
	}
	r1, r2 := rows[0], rows[1]

	if !r1.GameDate.Equal(r2.GameDate) {
		fail("gd count != 1")
		return
	}

	if r1.Team != r2.Opp || r1.Opp != r2.Team {
		fail("opp/team mismatch")
		return
	}

	if r1.Home && r2.Home {
		fail("2 home teams")
		return
	}
	if !r1.Home && !r2.Home {
		fail("2 away teams")
		return
	}

	if r1.OT != r2.OT {
		fail("OT periods different")
		return
	}

	if r1.OpenSpread != -r2.OpenSpread {
		fail("open_spread not negative versions of each other")
		return
	}
	if math.Abs(r1.OpenSpread) > MaxOpenSpread {
		fail("open_spread > MAX_OPEN_SPREAD")
		return
	}

	if r1.OpenPts != r2.OpenPts {
		fail("open_pts different")
		return
	}
	if r1.OpenPts > MaxOpenPts || r1.OpenPts < MinOpenPts {
		fail("open_pts outside boundaries")
		return
	}
}

type gdTeamKey struct {
	gd   string // YYYYMMDD
	team string
}

// inspectPlayerStats applies the player-group checklist to the rows
// sharing a game date and team.
func (c *Checker) inspectPlayerStats() {
	groups := make(map[gdTeamKey][]models.PlayerStat)
	for _, row := range c.snap.PlayerStats {
		key := gdTeamKey{gd: row.GameDate.Format("20060102"), team: row.Team}
		groups[key] = append(groups[key], row)
	}

	keys := make([]gdTeamKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].gd != keys[j].gd {
			return keys[i].gd < keys[j].gd
		}
		return keys[i].team < keys[j].team
	})

	for _, key := range keys {
		c.inspectTeamGameGroup(key, groups[key])
	}
}

func (c *Checker) inspectTeamGameGroup(key gdTeamKey, rows []models.PlayerStat) {
	did := fmt.Sprintf("gd/team grp (%s/%s)", key.gd, key.team)

	if len(rows) < 7 {
		c.log("playerstats", did, "Row count < 7")
		return
	}

	starters := 0
	for _, row := range rows {
		if row.Starter {
			starters++
		}
	}
	if starters != 5 {
		c.log("playerstats", did, "starter count != 5")
		return
	}

	gids := uniqueStrings(playerGIDs(rows))
	if len(gids) != 1 {
		c.log("playerstats", did, "gid count != 1")
		return
	}

	opponents := uniqueStrings(playerOpps(rows))
	if len(opponents) != 1 {
		c.log("playerstats", did, "opp count != 1")
		return
	}

	// The opponent's rows for the same date must carry the same gid.
	var oppGIDs []string
	for _, row := range c.snap.PlayerStats {
		if row.Team == opponents[0] && row.GameDate.Format("20060102") == key.gd {
			oppGIDs = append(oppGIDs, row.GID)
		}
	}
	oppGIDs = uniqueStrings(oppGIDs)
	if len(oppGIDs) == 0 || oppGIDs[0] != gids[0] {
		c.log("playerstats", did, "opp gid != gid")
		return
	}

	tsids := uniqueInts(playerTSIDs(rows))
	if len(tsids) != 1 {
		c.log("playerstats", did, "tsid count != 1")
		return
	}

	var teamRows []models.TeamStat
	for _, row := range c.snap.TeamStats {
		if row.ID == tsids[0] {
			teamRows = append(teamRows, row)
		}
	}
	if len(teamRows) != 1 {
		c.log("teamstats", did, "teamstats.id = tsid match count != 1")
		return
	}
	if key.gd != teamRows[0].GameDate.Format("20060102") {
		c.log("teamstats", did, "teamstats.gd != gd")
		return
	}
	if teamRows[0].Team != key.team {
		c.log("teamstats", did, "teamstats.team != team")
		return
	}

	players := uniqueStrings(playerNames(rows))
	if len(rows) != len(players) {
		c.log("playerstats", did, "Duplicate name")
		return
	}
}

// inspectPlayerNames scans every ordered pair of unique player names for
// edit distances below MaxLevenshtein, skipping pre-approved pairs. The
// result is sorted descending by the first name of the pair.
func (c *Checker) inspectPlayerNames() {
	uniq := uniqueStrings(playerNames(c.snap.PlayerStats))

	for i := 0; i+1 < len(uniq); i++ {
		ref := uniq[i]
		ranked := names.RankByDistance(ref, uniq[i+1:])
		for _, d := range ranked {
			if d.Distance >= MaxLevenshtein {
				break
			}
			if c.known.Contains(ref, d.Name) {
				continue
			}
			c.report.NearDuplicates = append(c.report.NearDuplicates, NearDuplicate{
				Name1:    ref,
				Name2:    d.Name,
				Distance: d.Distance,
			})
		}
	}

	sort.SliceStable(c.report.NearDuplicates, func(i, j int) bool {
		return c.report.NearDuplicates[i].Name1 > c.report.NearDuplicates[j].Name1
	})
}

// inspectTableNames flags names in free-text tables that the converter
// considers problematic.
func (c *Checker) inspectTableNames(table string, players []string) {
	for _, name := range uniqueStrings(players) {
		problematic, info := c.converter.IsProblematic(name)
		if problematic {
			c.log(table, name, info)
		}
	}
}

// uniqueStrings keeps the first occurrence of each value, preserving
// input order.
func uniqueStrings(vals []string) []string {
	seen := make(map[string]struct{}, len(vals))
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func uniqueInts(vals []int) []int {
	seen := make(map[int]struct{}, len(vals))
	out := make([]int, 0, len(vals))
	for _, v := range vals {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func sortedKeys(m map[string][]models.TeamStat) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func playerGIDs(rows []models.PlayerStat) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.GID
	}
	return out
}

func playerOpps(rows []models.PlayerStat) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Opp
	}
	return out
}

func playerTSIDs(rows []models.PlayerStat) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.TSID
	}
	return out
}

func playerNames(rows []models.PlayerStat) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Player
	}
	return out
}

func injuryPlayers(rows []models.Injury) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Player
	}
	return out
}

func newsPlayers(rows []models.NewsItem) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Player
	}
	return out
}
