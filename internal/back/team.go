package back

import (
	"bytes"
	"database/sql"
	"errors"
	"foos/internal/util"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// ErrMultipleTeams signals that more than one Team row matched a single pair
// of players. The schema makes this impossible for rows we created, it can
// only show up with hand-imported data.
var ErrMultipleTeams = errors.New("multiple teams found for the same pair of players")

// A Team is a fixed unordered pair of players carrying its own rating,
// independent from its members' individual ratings. The pair is stored in
// canonical order and unique at the store level, so a given pair resolves to
// at most one Team. Teams are created lazily the first time a pair shows up
// in a match and are never deleted.
type Team struct {
	ID        util.UUIDAsBlob
	CreatedAt util.TimeAsTimestamp
	PlayerAID util.UUIDAsBlob
	PlayerBID util.UUIDAsBlob
	Rating    int
}

func NewTeam(a, b Player, rules Rules) Team {
	aID, bID := canonicalPair(a.ID, b.ID)

	return Team{
		ID:        util.NewUUIDAsBlob(),
		CreatedAt: util.TimeAsTimestamp(time.Now()),
		PlayerAID: aID,
		PlayerBID: bID,
		Rating:    rules.StartingRating,
	}
}

// canonicalPair orders two player IDs bytewise so (a, b) and (b, a) end up
// in the same columns.
func canonicalPair(a, b util.UUIDAsBlob) (util.UUIDAsBlob, util.UUIDAsBlob) {
	if bytes.Compare(a[:], b[:]) > 0 {
		return b, a
	}

	return a, b
}

func (t *Team) insert(tx *sqlx.Tx) error {
	query, args, err := squirrel.Insert("Team").SetMap(squirrel.Eq{
		"ID":        t.ID,
		"CreatedAt": t.CreatedAt,
		"PlayerAID": t.PlayerAID,
		"PlayerBID": t.PlayerBID,
		"Rating":    t.Rating,
	}).ToSql()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return err
	}

	return nil
}

func (t *Team) update(tx *sqlx.Tx) error {
	query, args, err := squirrel.Update("Team").SetMap(squirrel.Eq{
		"Rating": t.Rating,
	}).Where("Team.ID = ?", t.ID).ToSql()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return err
	}

	return nil
}

func getTeamByID(tx *sqlx.Tx, id util.UUIDAsBlob) (Team, error) {
	var ret Team
	query := `SELECT * FROM Team WHERE Team.ID = ? LIMIT 1`
	if err := tx.Get(&ret, query, id); err != nil {
		return Team{}, err
	}

	return ret, nil
}

func getTeamByPlayers(tx *sqlx.Tx, a, b Player) (Team, error) {
	aID, bID := canonicalPair(a.ID, b.ID)

	var teams []Team
	query := `SELECT * FROM Team WHERE Team.PlayerAID = ? AND Team.PlayerBID = ?`
	if err := tx.Select(&teams, query, aID, bID); err != nil {
		return Team{}, err
	}

	switch len(teams) {
	case 0:
		return Team{}, sql.ErrNoRows
	case 1:
		return teams[0], nil
	default:
		return Team{}, ErrMultipleTeams
	}
}

// findOrCreateTeam returns the Team for a pair of players, creating it at
// the starting rating the first time the pair plays together.
func findOrCreateTeam(tx *sqlx.Tx, rules Rules, a, b Player) (Team, error) {
	team, err := getTeamByPlayers(tx, a, b)
	if err == nil {
		return team, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Team{}, err
	}

	team = NewTeam(a, b, rules)
	if err := team.insert(tx); err != nil {
		return Team{}, err
	}

	return team, nil
}

// getTeamPlayers returns both members of a team in canonical column order.
func getTeamPlayers(tx *sqlx.Tx, team Team) ([2]Player, error) {
	var players []Player
	query := `SELECT * FROM Player WHERE Player.ID IN(?, ?) ORDER BY Player.ID = ? DESC`
	if err := tx.Select(&players, query, team.PlayerAID, team.PlayerBID, team.PlayerAID); err != nil {
		return [2]Player{}, err
	}

	if len(players) != 2 {
		return [2]Player{}, sql.ErrNoRows
	}

	return [2]Player{players[0], players[1]}, nil
}
