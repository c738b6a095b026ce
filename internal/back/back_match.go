package back

import (
	"fmt"
	"foos/internal/util"

	"github.com/jmoiron/sqlx"
)

// MatchOutcome is what the caller gets back right after recording a match:
// the post-match rating of everyone involved.
type MatchOutcome struct {
	Players    map[string]int `json:"players"` // username -> new rating
	WinnerTeam int            `json:"winning_team"`
	LoserTeam  int            `json:"losing_team"`
}

// RecordMatch validates and appends one match to the ledger and moves the
// six impacted ratings (four players, two teams), as a single transaction.
// Winning and losing sides are given as usernames, the teams are resolved
// (and created if needed) on the fly.
func (b *Back) RecordMatch(
	winners, losers [2]string,
	winningScore, losingScore int,
) (outcome MatchOutcome, _ error) {
	for i := range winners {
		winners[i] = NormalizeName(winners[i])
		losers[i] = NormalizeName(losers[i])
	}

	if err := validateRoster(b.rules, winners, losers, winningScore, losingScore); err != nil {
		return MatchOutcome{}, err
	}

	if err := b.transaction(func(tx *sqlx.Tx) error {
		var err error
		outcome, err = recordMatch(tx, b.rules, winners, losers, winningScore, losingScore)
		return err
	}); err != nil {
		return MatchOutcome{}, err
	}

	return outcome, nil
}

// validateRoster fails on the first broken invariant, in a fixed order, and
// before anything has been written.
func validateRoster(rules Rules, winners, losers [2]string, winningScore, losingScore int) error {
	for _, v := range [...][2]string{winners, losers} {
		if err := validateName(v[0]); err != nil {
			return err
		}
		if err := validateName(v[1]); err != nil {
			return err
		}

		if v[0] == v[1] {
			return util.ErrPublic("a team cannot field the same player twice")
		}
	}

	for _, v := range winners {
		if v == losers[0] || v == losers[1] {
			return util.ErrPublic("the winning and losing teams cannot share a player")
		}
	}

	if winningScore != rules.WinningScore {
		return util.ErrPublic(fmt.Sprintf("the winning score must be %d", rules.WinningScore))
	}

	if losingScore < 0 || losingScore >= winningScore {
		return util.ErrPublic(fmt.Sprintf(
			"the losing score must be between 0 and %d", winningScore-1,
		))
	}

	return nil
}

func recordMatch(
	tx *sqlx.Tx, rules Rules,
	winners, losers [2]string,
	winningScore, losingScore int,
) (MatchOutcome, error) {
	winningPlayers, err := getPlayersByNames(tx, winners)
	if err != nil {
		return MatchOutcome{}, err
	}
	losingPlayers, err := getPlayersByNames(tx, losers)
	if err != nil {
		return MatchOutcome{}, err
	}

	winnerTeam, err := findOrCreateTeam(tx, rules, winningPlayers[0], winningPlayers[1])
	if err != nil {
		return MatchOutcome{}, err
	}
	loserTeam, err := findOrCreateTeam(tx, rules, losingPlayers[0], losingPlayers[1])
	if err != nil {
		return MatchOutcome{}, err
	}

	match := NewMatch(winnerTeam, loserTeam, winningScore, losingScore)
	if err := match.insert(tx); err != nil {
		return MatchOutcome{}, err
	}

	applyMatch(
		rules,
		&winnerTeam, &loserTeam,
		[2]*Player{&winningPlayers[0], &winningPlayers[1]},
		[2]*Player{&losingPlayers[0], &losingPlayers[1]},
	)

	outcome := MatchOutcome{
		Players:    make(map[string]int, 4),
		WinnerTeam: winnerTeam.Rating,
		LoserTeam:  loserTeam.Rating,
	}

	for _, v := range [...]*Team{&winnerTeam, &loserTeam} {
		if err := v.update(tx); err != nil {
			return MatchOutcome{}, err
		}
	}

	for _, v := range [...]*Player{
		&winningPlayers[0], &winningPlayers[1],
		&losingPlayers[0], &losingPlayers[1],
	} {
		if err := v.update(tx); err != nil {
			return MatchOutcome{}, err
		}

		outcome.Players[v.Name] = v.Rating
	}

	return outcome, nil
}

// applyMatch moves the ratings of both teams and their four players to their
// post-match values, in memory. Recording a single match and replaying the
// whole ledger both go through this exact step so they cannot diverge.
func applyMatch(rules Rules, winner, loser *Team, winners, losers [2]*Player) {
	newWinners, newLosers := rules.NewPlayerRatings(
		[2]int{winners[0].Rating, winners[1].Rating},
		[2]int{losers[0].Rating, losers[1].Rating},
	)

	for i := range winners {
		winners[i].Rating = newWinners[i]
		losers[i].Rating = newLosers[i]
	}

	winner.Rating, loser.Rating = rules.NewTeamRatings(winner.Rating, loser.Rating)
}

func getPlayersByNames(tx *sqlx.Tx, names [2]string) ([2]Player, error) {
	var ret [2]Player

	for i, name := range names {
		player, err := getPlayerByName(tx, name)
		if err != nil {
			return [2]Player{}, fmt.Errorf(`unknown player "%s": %w`, name, err)
		}

		ret[i] = player
	}

	return ret, nil
}

// DeletedMatch describes the match that was removed from the ledger.
type DeletedMatch struct {
	Winners, Losers           [2]string
	WinningScore, LosingScore int
}

// DeleteLatestMatch removes the chronologically latest match from the ledger
// and rebuilds every rating from the remaining history, as one transaction.
func (b *Back) DeleteLatestMatch() (deleted DeletedMatch, _ error) {
	if err := b.transaction(func(tx *sqlx.Tx) error {
		match, err := getLatestMatch(tx)
		if err != nil {
			return err
		}

		winnerTeam, err := getTeamByID(tx, match.WinnerTeamID)
		if err != nil {
			return err
		}
		loserTeam, err := getTeamByID(tx, match.LoserTeamID)
		if err != nil {
			return err
		}

		winners, err := getTeamPlayers(tx, winnerTeam)
		if err != nil {
			return err
		}
		losers, err := getTeamPlayers(tx, loserTeam)
		if err != nil {
			return err
		}

		deleted = DeletedMatch{
			Winners:      [2]string{winners[0].Name, winners[1].Name},
			Losers:       [2]string{losers[0].Name, losers[1].Name},
			WinningScore: match.WinningScore,
			LosingScore:  match.LosingScore,
		}

		if err := match.delete(tx); err != nil {
			return err
		}

		return recalculateRatings(tx, b.rules)
	}); err != nil {
		return DeletedMatch{}, err
	}

	return deleted, nil
}
