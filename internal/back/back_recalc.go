package back

import (
	"fmt"
	"foos/internal/util"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
)

// Recalculate resets every player and team rating to the baseline and
// replays the whole match ledger in chronological order. The stored ratings
// are only a cache of this replay, so running it at any time (and any number
// of times in a row) yields the same values.
func (b *Back) Recalculate() error {
	start := time.Now()
	defer func() { log.Printf("info: recalculated all ratings in %s", time.Since(start)) }()

	return b.transaction(func(tx *sqlx.Tx) error {
		return recalculateRatings(tx, b.rules)
	})
}

// recalculateRatings does the actual replay: everything is loaded and reset
// in memory, every match is applied through the same step used when
// recording one, then all ratings are written back. It must run in the same
// transaction as whatever ledger mutation made it necessary so readers never
// observe a half-reset state.
func recalculateRatings(tx *sqlx.Tx, rules Rules) error {
	var players []Player
	if err := tx.Select(&players, `SELECT * FROM Player`); err != nil {
		return err
	}

	var teams []Team
	if err := tx.Select(&teams, `SELECT * FROM Team`); err != nil {
		return err
	}

	matches, err := getMatchesByCreation(tx)
	if err != nil {
		return err
	}

	playersByID := make(map[util.UUIDAsBlob]*Player, len(players))
	for k := range players {
		players[k].Rating = rules.StartingRating
		playersByID[players[k].ID] = &players[k]
	}

	teamsByID := make(map[util.UUIDAsBlob]*Team, len(teams))
	for k := range teams {
		teams[k].Rating = rules.StartingRating
		teamsByID[teams[k].ID] = &teams[k]
	}

	for k := range matches {
		if err := replayMatch(rules, &matches[k], teamsByID, playersByID); err != nil {
			return err
		}
	}

	for k := range players {
		if err := players[k].update(tx); err != nil {
			return err
		}
	}

	for k := range teams {
		if err := teams[k].update(tx); err != nil {
			return err
		}
	}

	return nil
}

func replayMatch(
	rules Rules,
	match *Match,
	teamsByID map[util.UUIDAsBlob]*Team,
	playersByID map[util.UUIDAsBlob]*Player,
) error {
	winner, loser := teamsByID[match.WinnerTeamID], teamsByID[match.LoserTeamID]
	if winner == nil || loser == nil {
		return fmt.Errorf("match %s references an unknown team", match.ID)
	}

	winners := [2]*Player{playersByID[winner.PlayerAID], playersByID[winner.PlayerBID]}
	losers := [2]*Player{playersByID[loser.PlayerAID], playersByID[loser.PlayerBID]}
	for _, v := range [...][2]*Player{winners, losers} {
		if v[0] == nil || v[1] == nil {
			return fmt.Errorf("match %s references an unknown player", match.ID)
		}
	}

	applyMatch(rules, winner, loser, winners, losers)

	return nil
}
