package integrity

import (
	"testing"
	"time"

	"nba_dfs/maintenance/internal/models"
	"nba_dfs/maintenance/internal/names"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gd = time.Date(2018, 10, 25, 0, 0, 0, 0, time.UTC)

// teamPair returns a mutually consistent teamstats pair for one game.
func teamPair() []models.TeamStat {
	gid := models.CreateGID(gd, "BOS", "NYK")
	return []models.TeamStat{
		{
			ID: 1, GID: gid, GameDate: gd, Season: 2018,
			Team: "BOS", Opp: "NYK", Home: true, OT: 0,
			OpenSpread: -3, OpenPts: 210,
		},
		{
			ID: 2, GID: gid, GameDate: gd, Season: 2018,
			Team: "NYK", Opp: "BOS", Home: false, OT: 0,
			OpenSpread: 3, OpenPts: 210,
		},
	}
}

// Roster names are pairwise beyond the near-duplicate threshold so a
// valid snapshot produces an empty name log.
var rosters = map[string][]string{
	"BOS": {"Kyrie Irving", "Jayson Tatum", "Jaylen Brown", "Al Horford",
		"Marcus Smart", "Terry Rozier", "Gordon Hayward", "Daniel Theis"},
	"NYK": {"Tim Hardaway", "Kevin Knox", "Enes Kanter", "Frank Ntilikina",
		"Mario Hezonja", "Emmanuel Mudiay", "Noah Vonleh", "Allonzo Trier"},
}

// playerGroup returns a valid playerstats group of n players for team
// against opp, with 5 starters and the given tsid.
func playerGroup(team, opp string, tsid, n int) []models.PlayerStat {
	gid := models.CreateGID(gd, "BOS", "NYK")
	rows := make([]models.PlayerStat, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, models.PlayerStat{
			ID:       tsid*100 + i,
			GID:      gid,
			GameDate: gd,
			Season:   2018,
			Team:     team,
			Opp:      opp,
			Player:   rosters[team][i],
			Starter:  i < 5,
			TSID:     tsid,
		})
	}
	return rows
}

func validSnapshot() Snapshot {
	return Snapshot{
		PlayerStats: append(playerGroup("BOS", "NYK", 1, 8), playerGroup("NYK", "BOS", 2, 8)...),
		TeamStats:   teamPair(),
	}
}

func emptyConverter() *names.Converter {
	return names.NewConverter(names.ConverterConfig{Lenient: true})
}

func TestChecker_CleanSnapshot(t *testing.T) {
	report := NewChecker(validSnapshot(), nil, emptyConverter()).Run()

	assert.Empty(t, report.Discrepancies)
	assert.Empty(t, report.NearDuplicates)
	assert.True(t, report.Clean())
}

func TestChecker_TeamPair_RowCount(t *testing.T) {
	snap := Snapshot{TeamStats: teamPair()[:1]}
	report := NewChecker(snap, nil, emptyConverter()).Run()

	require.Len(t, report.Discrepancies, 1)
	d := report.Discrepancies[0]
	assert.Equal(t, "teamstats", d.Table)
	assert.Equal(t, "gid = 181025_BOS_NYK", d.ID)
	assert.Equal(t, "Row count != 2", d.Info)
}

func TestChecker_TeamPair_TwoHomeTeams(t *testing.T) {
	rows := teamPair()
	rows[1].Home = true
	// Later checks would also fail, but the first violation
	// short-circuits the rest of the checklist for the group.
	rows[1].OT = 2
	rows[1].OpenSpread = 99

	snap := Snapshot{TeamStats: rows}
	report := NewChecker(snap, nil, emptyConverter()).Run()

	require.Len(t, report.Discrepancies, 1)
	assert.Equal(t, "2 home teams", report.Discrepancies[0].Info)
}

func TestChecker_TeamPair_TwoAwayTeams(t *testing.T) {
	rows := teamPair()
	rows[0].Home = false

	snap := Snapshot{TeamStats: rows}
	report := NewChecker(snap, nil, emptyConverter()).Run()

	require.Len(t, report.Discrepancies, 1)
	assert.Equal(t, "2 away teams", report.Discrepancies[0].Info)
}

func TestChecker_TeamPair_DateMismatch(t *testing.T) {
	rows := teamPair()
	rows[1].GameDate = gd.AddDate(0, 0, 1)

	report := NewChecker(Snapshot{TeamStats: rows}, nil, emptyConverter()).Run()

	require.Len(t, report.Discrepancies, 1)
	assert.Equal(t, "gd count != 1", report.Discrepancies[0].Info)
}

func TestChecker_TeamPair_OpponentSymmetry(t *testing.T) {
	rows := teamPair()
	rows[1].Opp = "LAL"

	report := NewChecker(Snapshot{TeamStats: rows}, nil, emptyConverter()).Run()

	require.Len(t, report.Discrepancies, 1)
	assert.Equal(t, "opp/team mismatch", report.Discrepancies[0].Info)
}

func TestChecker_TeamPair_OvertimeMismatch(t *testing.T) {
	rows := teamPair()
	rows[1].OT = 1

	report := NewChecker(Snapshot{TeamStats: rows}, nil, emptyConverter()).Run()

	require.Len(t, report.Discrepancies, 1)
	assert.Equal(t, "OT periods different", report.Discrepancies[0].Info)
}

func TestChecker_TeamPair_SpreadChecks(t *testing.T) {
	t.Run("not negations", func(t *testing.T) {
		rows := teamPair()
		rows[1].OpenSpread = 4

		report := NewChecker(Snapshot{TeamStats: rows}, nil, emptyConverter()).Run()
		require.Len(t, report.Discrepancies, 1)
		assert.Equal(t, "open_spread not negative versions of each other", report.Discrepancies[0].Info)
	})

	t.Run("magnitude bound", func(t *testing.T) {
		rows := teamPair()
		rows[0].OpenSpread = -26
		rows[1].OpenSpread = 26

		report := NewChecker(Snapshot{TeamStats: rows}, nil, emptyConverter()).Run()
		require.Len(t, report.Discrepancies, 1)
		assert.Equal(t, "open_spread > MAX_OPEN_SPREAD", report.Discrepancies[0].Info)
	})
}

func TestChecker_TeamPair_TotalChecks(t *testing.T) {
	t.Run("different totals", func(t *testing.T) {
		rows := teamPair()
		rows[1].OpenPts = 211

		report := NewChecker(Snapshot{TeamStats: rows}, nil, emptyConverter()).Run()
		require.Len(t, report.Discrepancies, 1)
		assert.Equal(t, "open_pts different", report.Discrepancies[0].Info)
	})

	t.Run("outside plausible range", func(t *testing.T) {
		rows := teamPair()
		rows[0].OpenPts = 149
		rows[1].OpenPts = 149

		report := NewChecker(Snapshot{TeamStats: rows}, nil, emptyConverter()).Run()
		require.Len(t, report.Discrepancies, 1)
		assert.Equal(t, "open_pts outside boundaries", report.Discrepancies[0].Info)
	})
}

func TestChecker_PlayerGroup_RowCount(t *testing.T) {
	snap := validSnapshot()
	// Shrink the BOS group below 7 players.
	snap.PlayerStats = append(playerGroup("BOS", "NYK", 1, 6), playerGroup("NYK", "BOS", 2, 8)...)

	report := NewChecker(snap, nil, emptyConverter()).Run()

	// The NYK group still reconciles against the remaining BOS rows, so
	// only the short group is flagged.
	require.Len(t, report.Discrepancies, 1)
	assert.Equal(t, "playerstats", report.Discrepancies[0].Table)
	assert.Equal(t, "gd/team grp (20181025/BOS)", report.Discrepancies[0].ID)
	assert.Equal(t, "Row count < 7", report.Discrepancies[0].Info)
}

func TestChecker_PlayerGroup_StarterCount(t *testing.T) {
	snap := validSnapshot()
	snap.PlayerStats[0].Starter = false // 4 starters in the BOS group

	report := NewChecker(snap, nil, emptyConverter()).Run()

	require.Len(t, report.Discrepancies, 1)
	assert.Equal(t, "starter count != 5", report.Discrepancies[0].Info)
	assert.Equal(t, "gd/team grp (20181025/BOS)", report.Discrepancies[0].ID)
}

func TestChecker_PlayerGroup_DuplicateName(t *testing.T) {
	snap := validSnapshot()
	snap.PlayerStats[1].Player = snap.PlayerStats[0].Player

	report := NewChecker(snap, nil, emptyConverter()).Run()

	require.Len(t, report.Discrepancies, 1)
	assert.Equal(t, "Duplicate name", report.Discrepancies[0].Info)
}

func TestChecker_PlayerGroup_GIDMismatchWithOpponent(t *testing.T) {
	snap := validSnapshot()
	// Rewrite every NYK row to a different gid: both groups then fail
	// the cross-group symmetry check.
	for i := range snap.PlayerStats {
		if snap.PlayerStats[i].Team == "NYK" {
			snap.PlayerStats[i].GID = "181025_NYK_XXX"
		}
	}

	report := NewChecker(snap, nil, emptyConverter()).Run()

	require.Len(t, report.Discrepancies, 2)
	assert.Equal(t, "opp gid != gid", report.Discrepancies[0].Info)
	assert.Equal(t, "opp gid != gid", report.Discrepancies[1].Info)
}

func TestChecker_PlayerGroup_TSIDChecks(t *testing.T) {
	t.Run("multiple tsids", func(t *testing.T) {
		snap := validSnapshot()
		snap.PlayerStats[0].TSID = 99

		report := NewChecker(snap, nil, emptyConverter()).Run()
		require.Len(t, report.Discrepancies, 1)
		assert.Equal(t, "tsid count != 1", report.Discrepancies[0].Info)
	})

	t.Run("tsid resolves to no teamstats row", func(t *testing.T) {
		snap := validSnapshot()
		for i := range snap.PlayerStats {
			if snap.PlayerStats[i].Team == "BOS" {
				snap.PlayerStats[i].TSID = 99
			}
		}

		report := NewChecker(snap, nil, emptyConverter()).Run()
		require.Len(t, report.Discrepancies, 1)
		assert.Equal(t, "teamstats", report.Discrepancies[0].Table)
		assert.Equal(t, "teamstats.id = tsid match count != 1", report.Discrepancies[0].Info)
	})

	t.Run("tsid resolves to wrong team", func(t *testing.T) {
		snap := validSnapshot()
		for i := range snap.PlayerStats {
			if snap.PlayerStats[i].Team == "BOS" {
				snap.PlayerStats[i].TSID = 2 // NYK's teamstats row
			}
		}

		report := NewChecker(snap, nil, emptyConverter()).Run()
		require.Len(t, report.Discrepancies, 1)
		assert.Equal(t, "teamstats.team != team", report.Discrepancies[0].Info)
	})
}

func TestChecker_NearDuplicates(t *testing.T) {
	snap := validSnapshot()
	snap.PlayerStats[0].Player = "Jon Smith"
	snap.PlayerStats[8].Player = "John Smith" // first NYK row

	report := NewChecker(snap, nil, emptyConverter()).Run()

	require.Len(t, report.NearDuplicates, 1)
	nd := report.NearDuplicates[0]
	assert.Equal(t, "Jon Smith", nd.Name1)
	assert.Equal(t, "John Smith", nd.Name2)
	assert.Equal(t, 1, nd.Distance)
}

func TestChecker_NearDuplicates_KnownPairSuppressed(t *testing.T) {
	snap := validSnapshot()
	snap.PlayerStats[0].Player = "Jon Smith"
	snap.PlayerStats[8].Player = "John Smith"

	// Membership is order-insensitive: the approved pair is stored
	// reversed relative to discovery order.
	known := KnownSimilarPairs{{"John Smith", "Jon Smith"}}

	report := NewChecker(snap, known, emptyConverter()).Run()
	assert.Empty(t, report.NearDuplicates)
}

func TestChecker_NearDuplicates_SortedDescendingByName1(t *testing.T) {
	snap := Snapshot{
		PlayerStats: []models.PlayerStat{
			{GameDate: gd, Team: "AAA", Player: "Abe Lin"},
			{GameDate: gd, Team: "AAA", Player: "Abe Lim"},
			{GameDate: gd, Team: "AAA", Player: "Zed Foo"},
			{GameDate: gd, Team: "AAA", Player: "Zed Fop"},
		},
	}

	report := NewChecker(snap, nil, emptyConverter()).Run()

	require.Len(t, report.NearDuplicates, 2)
	assert.Equal(t, "Zed Foo", report.NearDuplicates[0].Name1)
	assert.Equal(t, "Abe Lin", report.NearDuplicates[1].Name1)
}

func TestChecker_TableNameScan(t *testing.T) {
	converter := names.NewConverter(names.ConverterConfig{
		Pairs:        map[string]string{"Jon Smith": "John Smith"},
		KnownMissing: []string{"Obscure Rookie"},
		Known:        []string{"John Smith"},
		Lenient:      true,
	})

	snap := Snapshot{
		Injuries: []models.Injury{
			{ID: 1, Player: "Jon Smith"},
			{ID: 2, Player: "John Smith"},
			{ID: 3, Player: "Obscure Rookie"},
		},
		News: []models.NewsItem{
			{ID: 1, Player: "Total Stranger"},
		},
	}

	report := NewChecker(snap, nil, converter).Run()

	require.Len(t, report.Discrepancies, 2)

	assert.Equal(t, "injuries", report.Discrepancies[0].Table)
	assert.Equal(t, "Jon Smith", report.Discrepancies[0].ID)
	assert.Equal(t, "Should be John Smith.", report.Discrepancies[0].Info)

	assert.Equal(t, "news", report.Discrepancies[1].Table)
	assert.Equal(t, "Total Stranger", report.Discrepancies[1].ID)
	assert.Equal(t, "Not in playerstats, no associated name, and not known to be missing.", report.Discrepancies[1].Info)
}

func TestKnownSimilarPairs_Contains(t *testing.T) {
	known := KnownSimilarPairs{{"A", "B"}}

	assert.True(t, known.Contains("A", "B"))
	assert.True(t, known.Contains("B", "A"))
	assert.False(t, known.Contains("A", "C"))
}
