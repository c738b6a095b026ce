package back // nolint:testpackage

import (
	"testing"

	"github.com/jmoiron/sqlx"
)

func recordSomeMatches(t *testing.T, back *Back) {
	t.Helper()

	matches := []struct {
		winners, losers [2]string
		losingScore     int
	}{
		{[2]string{"alice", "bob"}, [2]string{"carol", "dave"}, 2},
		{[2]string{"carol", "dave"}, [2]string{"alice", "bob"}, 4},
		{[2]string{"alice", "carol"}, [2]string{"bob", "dave"}, 0},
		{[2]string{"alice", "bob"}, [2]string{"erin", "frank"}, 3},
		{[2]string{"alice", "bob"}, [2]string{"carol", "dave"}, 1},
	}

	for _, v := range matches {
		if _, err := back.RecordMatch(v.winners, v.losers, 5, v.losingScore); err != nil {
			t.Fatal(err)
		}
	}
}

func snapshotRatings(t *testing.T, back *Back) (players map[string]int, teams map[string]int) {
	t.Helper()

	players = map[string]int{}
	teams = map[string]int{}

	if err := back.transaction(func(tx *sqlx.Tx) error {
		var p []Player
		if err := tx.Select(&p, `SELECT * FROM Player`); err != nil {
			return err
		}
		for _, v := range p {
			players[v.Name] = v.Rating
		}

		var ts []Team
		if err := tx.Select(&ts, `SELECT * FROM Team`); err != nil {
			return err
		}
		for _, v := range ts {
			teams[v.ID.String()] = v.Rating
		}

		return nil
	}); err != nil {
		t.Fatal(err)
	}

	return players, teams
}

func assertSameRatings(t *testing.T, label string, expected, got map[string]int) {
	t.Helper()

	for k, v := range expected {
		if got[k] != v {
			t.Errorf("%s: expected %s at %d, got %d", label, k, v, got[k])
		}
	}
	if len(got) != len(expected) {
		t.Errorf("%s: expected %d entries, got %d", label, len(expected), len(got))
	}
}

// A full replay of the ledger must land on the exact ratings the incremental
// updates produced, and running it again must not change anything.
func TestRecalculationMatchesIncrementalUpdates(t *testing.T) {
	back := createFixturedTestBack(t)
	recordSomeMatches(t, back)

	incrementalPlayers, incrementalTeams := snapshotRatings(t, back)

	for i := 0; i < 2; i++ {
		if err := back.Recalculate(); err != nil {
			t.Fatal(err)
		}

		players, teams := snapshotRatings(t, back)
		assertSameRatings(t, "players", incrementalPlayers, players)
		assertSameRatings(t, "teams", incrementalTeams, teams)
	}
}

func TestRecalculationAfterUndoReplaysHistory(t *testing.T) {
	back := createFixturedTestBack(t)
	recordSomeMatches(t, back)

	// Replaying all matches but the last one on a fresh back must yield the
	// same ratings as deleting the last match of the full ledger.
	reference := createFixturedTestBack(t)
	matches := []struct {
		winners, losers [2]string
		losingScore     int
	}{
		{[2]string{"alice", "bob"}, [2]string{"carol", "dave"}, 2},
		{[2]string{"carol", "dave"}, [2]string{"alice", "bob"}, 4},
		{[2]string{"alice", "carol"}, [2]string{"bob", "dave"}, 0},
		{[2]string{"alice", "bob"}, [2]string{"erin", "frank"}, 3},
	}
	for _, v := range matches {
		if _, err := reference.RecordMatch(v.winners, v.losers, 5, v.losingScore); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := back.DeleteLatestMatch(); err != nil {
		t.Fatal(err)
	}

	expectedPlayers, _ := snapshotRatings(t, reference)
	players, _ := snapshotRatings(t, back)
	assertSameRatings(t, "players", expectedPlayers, players)
}

// Undoing a match does not delete the Team it created, but the team comes
// back to the baseline rating.
func TestUndoKeepsTeamAtBaseline(t *testing.T) {
	back := createFixturedTestBack(t)

	if _, err := back.RecordMatch(
		[2]string{"alice", "bob"},
		[2]string{"carol", "dave"},
		5, 2,
	); err != nil {
		t.Fatal(err)
	}
	if _, err := back.DeleteLatestMatch(); err != nil {
		t.Fatal(err)
	}

	if count := countRows(t, back, "Team"); count != 2 {
		t.Errorf("expected both teams to survive the undo, got %d", count)
	}

	stats, err := back.GetTeamStats("alice", "bob")
	if err != nil {
		t.Fatal(err)
	}
	if stats.Rating != 1000 || stats.Wins != 0 || stats.Losses != 0 {
		t.Errorf("expected a pristine team, got %+v", stats)
	}
}
