package back

import (
	"github.com/jmoiron/sqlx"
)

// BoardDirection selects which end of a leaderboard to return.
type BoardDirection int

const (
	BoardTop    BoardDirection = iota // best rated first
	BoardBottom                       // worst rated first
)

func (d BoardDirection) order() string {
	if d == BoardBottom {
		return "ASC"
	}

	return "DESC"
}

// GetPlayerBoard returns up to limit players ranked by rating. Only players
// with at least three games qualify. Ties are broken by username so the
// order is stable.
func (b *Back) GetPlayerBoard(direction BoardDirection, limit int) (board []PlayerStats, _ error) {
	if err := b.transaction(func(tx *sqlx.Tx) error {
		if err := tx.Select(&board, `
            SELECT
                Player.Name AS Username,
                Player.Rating AS Rating,
                SUM(CASE WHEN Match.WinnerTeamID = Team.ID THEN 1 ELSE 0 END) AS Wins,
                SUM(CASE WHEN Match.LoserTeamID = Team.ID THEN 1 ELSE 0 END) AS Losses,
                SUM(CASE WHEN Match.WinnerTeamID = Team.ID THEN Match.WinningScore ELSE Match.LosingScore END) AS GoalsScored,
                SUM(CASE WHEN Match.WinnerTeamID = Team.ID THEN Match.LosingScore ELSE Match.WinningScore END) AS GoalsAllowed
            FROM Player
            INNER JOIN Team ON(Team.PlayerAID = Player.ID OR Team.PlayerBID = Player.ID)
            INNER JOIN Match ON(Match.WinnerTeamID = Team.ID OR Match.LoserTeamID = Team.ID)
            GROUP BY Player.ID
            HAVING (Wins + Losses) >= 3
            ORDER BY Player.Rating `+direction.order()+`, Player.Name ASC
            LIMIT ?`,
			limit,
		); err != nil {
			return err
		}

		for k := range board {
			board[k].WinPercentage = playerWinPercentage(board[k].Wins, board[k].Losses)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return board, nil
}

// GetTeamBoard returns up to limit teams ranked by rating. A team qualifies
// with at least three wins, regardless of how many games it played. The
// asymmetry with the player board is inherited behavior and on purpose.
// Ties are broken by the members' usernames so the order is stable.
func (b *Back) GetTeamBoard(direction BoardDirection, limit int) (board []TeamStats, _ error) {
	if err := b.transaction(func(tx *sqlx.Tx) error {
		if err := tx.Select(&board, `
            SELECT
                A.Name AS PlayerA,
                B.Name AS PlayerB,
                Team.Rating AS Rating,
                SUM(CASE WHEN Match.WinnerTeamID = Team.ID THEN 1 ELSE 0 END) AS Wins,
                SUM(CASE WHEN Match.LoserTeamID = Team.ID THEN 1 ELSE 0 END) AS Losses,
                SUM(CASE WHEN Match.WinnerTeamID = Team.ID THEN Match.WinningScore ELSE Match.LosingScore END) AS GoalsScored,
                SUM(CASE WHEN Match.WinnerTeamID = Team.ID THEN Match.LosingScore ELSE Match.WinningScore END) AS GoalsAllowed
            FROM Team
            INNER JOIN Player A ON(A.ID = Team.PlayerAID)
            INNER JOIN Player B ON(B.ID = Team.PlayerBID)
            INNER JOIN Match ON(Match.WinnerTeamID = Team.ID OR Match.LoserTeamID = Team.ID)
            GROUP BY Team.ID
            HAVING Wins >= 3
            ORDER BY Team.Rating `+direction.order()+`, A.Name ASC, B.Name ASC
            LIMIT ?`,
			limit,
		); err != nil {
			return err
		}

		for k := range board {
			board[k].WinPercentage = teamWinPercentage(board[k].Wins, board[k].Losses)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return board, nil
}
