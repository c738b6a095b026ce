package back

import (
	"github.com/jmoiron/sqlx"
)

// PlayerStats is the public record of a single player: its rating and the
// descriptive numbers aggregated over every match it played.
type PlayerStats struct {
	Username      string  `json:"username"`
	Rating        int     `json:"elo"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinPercentage float64 `json:"win_percentage"`
	GoalsScored   int     `json:"goals_scored"`
	GoalsAllowed  int     `json:"goals_allowed"`
}

// TeamStats is the equivalent of PlayerStats for a fixed pair of players.
type TeamStats struct {
	PlayerA       string  `json:"player_a"`
	PlayerB       string  `json:"player_b"`
	Rating        int     `json:"elo"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinPercentage float64 `json:"win_percentage"`
	GoalsScored   int     `json:"goals_scored"`
	GoalsAllowed  int     `json:"goals_allowed"`
}

// GetPlayerStats returns the stats of a single player, sql.ErrNoRows if the
// username is unknown.
func (b *Back) GetPlayerStats(username string) (stats PlayerStats, _ error) {
	username = NormalizeName(username)
	if err := validateName(username); err != nil {
		return PlayerStats{}, err
	}

	if err := b.transaction(func(tx *sqlx.Tx) error {
		player, err := getPlayerByName(tx, username)
		if err != nil {
			return err
		}

		stats, err = getPlayerStats(tx, player)
		return err
	}); err != nil {
		return PlayerStats{}, err
	}

	return stats, nil
}

func getPlayerStats(tx *sqlx.Tx, player Player) (PlayerStats, error) {
	stats := PlayerStats{
		Username: player.Name,
		Rating:   player.Rating,
	}

	if err := tx.Get(&stats, `
        SELECT
            COALESCE(SUM(CASE WHEN Match.WinnerTeamID = Team.ID THEN 1 ELSE 0 END), 0) AS Wins,
            COALESCE(SUM(CASE WHEN Match.LoserTeamID = Team.ID THEN 1 ELSE 0 END), 0) AS Losses,
            COALESCE(SUM(CASE WHEN Match.WinnerTeamID = Team.ID THEN Match.WinningScore ELSE Match.LosingScore END), 0) AS GoalsScored,
            COALESCE(SUM(CASE WHEN Match.WinnerTeamID = Team.ID THEN Match.LosingScore ELSE Match.WinningScore END), 0) AS GoalsAllowed
        FROM Team
        INNER JOIN Match ON(Match.WinnerTeamID = Team.ID OR Match.LoserTeamID = Team.ID)
        WHERE Team.PlayerAID = ? OR Team.PlayerBID = ?`,
		player.ID, player.ID,
	); err != nil {
		return PlayerStats{}, err
	}

	stats.WinPercentage = playerWinPercentage(stats.Wins, stats.Losses)

	return stats, nil
}

// GetTeamStats returns the stats of the team made of exactly the two given
// players, sql.ErrNoRows if either player or the pair has no Team yet.
func (b *Back) GetTeamStats(username1, username2 string) (stats TeamStats, _ error) {
	username1, username2 = NormalizeName(username1), NormalizeName(username2)
	for _, v := range []string{username1, username2} {
		if err := validateName(v); err != nil {
			return TeamStats{}, err
		}
	}

	if err := b.transaction(func(tx *sqlx.Tx) error {
		player1, err := getPlayerByName(tx, username1)
		if err != nil {
			return err
		}
		player2, err := getPlayerByName(tx, username2)
		if err != nil {
			return err
		}

		team, err := getTeamByPlayers(tx, player1, player2)
		if err != nil {
			return err
		}

		stats, err = getTeamStats(tx, team)
		return err
	}); err != nil {
		return TeamStats{}, err
	}

	return stats, nil
}

func getTeamStats(tx *sqlx.Tx, team Team) (TeamStats, error) {
	players, err := getTeamPlayers(tx, team)
	if err != nil {
		return TeamStats{}, err
	}

	stats := TeamStats{
		PlayerA: players[0].Name,
		PlayerB: players[1].Name,
		Rating:  team.Rating,
	}

	if err := tx.Get(&stats, `
        SELECT
            COALESCE(SUM(CASE WHEN Match.WinnerTeamID = ? THEN 1 ELSE 0 END), 0) AS Wins,
            COALESCE(SUM(CASE WHEN Match.LoserTeamID = ? THEN 1 ELSE 0 END), 0) AS Losses,
            COALESCE(SUM(CASE WHEN Match.WinnerTeamID = ? THEN Match.WinningScore ELSE Match.LosingScore END), 0) AS GoalsScored,
            COALESCE(SUM(CASE WHEN Match.WinnerTeamID = ? THEN Match.LosingScore ELSE Match.WinningScore END), 0) AS GoalsAllowed
        FROM Match
        WHERE Match.WinnerTeamID = ? OR Match.LoserTeamID = ?`,
		team.ID, team.ID, team.ID, team.ID, team.ID, team.ID,
	); err != nil {
		return TeamStats{}, err
	}

	stats.WinPercentage = teamWinPercentage(stats.Wins, stats.Losses)

	return stats, nil
}

// playerWinPercentage is 0 by convention for a player with no win, even with
// no game at all.
func playerWinPercentage(wins, losses int) float64 {
	if wins == 0 {
		return 0
	}

	return float64(wins) / float64(wins+losses) * 100
}

// teamWinPercentage is an explicit 100 for a team that never lost. Unlike
// players, a Team only exists because of at least one match.
func teamWinPercentage(wins, losses int) float64 {
	if losses == 0 {
		if wins == 0 {
			return 0
		}

		return 100
	}

	return float64(wins) / float64(wins+losses) * 100
}
