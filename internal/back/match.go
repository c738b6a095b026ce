package back

import (
	"foos/internal/util"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// A Match is one entry of the append-only ledger every rating derives from.
// It never changes once written, the only allowed mutation is deleting the
// chronologically latest entry.
type Match struct {
	ID           util.UUIDAsBlob
	CreatedAt    util.TimeAsTimestamp
	WinnerTeamID util.UUIDAsBlob
	LoserTeamID  util.UUIDAsBlob
	WinningScore int
	LosingScore  int
}

func NewMatch(winner, loser Team, winningScore, losingScore int) Match {
	return Match{
		ID:           util.NewUUIDAsBlob(),
		CreatedAt:    util.TimeAsTimestamp(time.Now()),
		WinnerTeamID: winner.ID,
		LoserTeamID:  loser.ID,
		WinningScore: winningScore,
		LosingScore:  losingScore,
	}
}

func (m *Match) insert(tx *sqlx.Tx) error {
	query, args, err := squirrel.Insert("Match").SetMap(squirrel.Eq{
		"ID":           m.ID,
		"CreatedAt":    m.CreatedAt,
		"WinnerTeamID": m.WinnerTeamID,
		"LoserTeamID":  m.LoserTeamID,
		"WinningScore": m.WinningScore,
		"LosingScore":  m.LosingScore,
	}).ToSql()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return err
	}

	return nil
}

func (m *Match) delete(tx *sqlx.Tx) error {
	_, err := tx.Exec(`DELETE FROM Match WHERE Match.ID = ?`, m.ID)
	return err
}

// Ledger order is creation time, the rowid breaks same-second ties so the
// order is total and matches insertion order.

func getLatestMatch(tx *sqlx.Tx) (Match, error) {
	var ret Match
	query := `SELECT * FROM Match ORDER BY Match.CreatedAt DESC, Match._rowid_ DESC LIMIT 1`
	if err := tx.Get(&ret, query); err != nil {
		return Match{}, err
	}

	return ret, nil
}

func getMatchesByCreation(tx *sqlx.Tx) ([]Match, error) {
	var ret []Match
	query := `SELECT * FROM Match ORDER BY Match.CreatedAt ASC, Match._rowid_ ASC`
	if err := tx.Select(&ret, query); err != nil {
		return nil, err
	}

	return ret, nil
}
