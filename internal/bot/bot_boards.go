package bot

import (
	"fmt"
	"foos/internal/back"
	"foos/internal/util"
	"io"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

const defaultBoardSize = 10

func (bot *Bot) cmdTop(_ *discordgo.Message, args []string, w io.Writer) error {
	return bot.writeBoard(back.BoardTop, args, w)
}

func (bot *Bot) cmdBottom(_ *discordgo.Message, args []string, w io.Writer) error {
	return bot.writeBoard(back.BoardBottom, args, w)
}

// Historical command names for the team boards.

func (bot *Bot) cmdDreamTeams(_ *discordgo.Message, args []string, w io.Writer) error {
	return bot.writeBoard(back.BoardTop, append(args, "teams"), w)
}

func (bot *Bot) cmdNightmareTeams(_ *discordgo.Message, args []string, w io.Writer) error {
	return bot.writeBoard(back.BoardBottom, append(args, "teams"), w)
}

// parseBoardArgs understands `[N] [teams]` in any order.
func parseBoardArgs(args []string) (limit int, teams bool, _ error) {
	limit = defaultBoardSize

	for _, v := range args {
		if v == "teams" {
			teams = true
			continue
		}

		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return 0, false, util.ErrPublic("usage: !top [N] [teams]")
		}
		limit = n
	}

	return limit, teams, nil
}

func (bot *Bot) writeBoard(direction back.BoardDirection, args []string, w io.Writer) error {
	limit, teams, err := parseBoardArgs(args)
	if err != nil {
		return err
	}

	if teams {
		return bot.writeTeamBoard(direction, limit, w)
	}

	return bot.writePlayerBoard(direction, limit, w)
}

func (bot *Bot) writePlayerBoard(direction back.BoardDirection, limit int, w io.Writer) error {
	board, err := bot.back.GetPlayerBoard(direction, limit)
	if err != nil {
		return err
	}

	if len(board) == 0 {
		fmt.Fprint(w, "No player has played 3 games yet.")
		return nil
	}

	fmt.Fprintln(w, "```")
	for k, v := range board {
		fmt.Fprintf(
			w, "%2d. %-20s %4d (%d-%d, %.0f %%)\n",
			k+1, v.Username, v.Rating, v.Wins, v.Losses, v.WinPercentage,
		)
	}
	fmt.Fprint(w, "```")

	return nil
}

func (bot *Bot) writeTeamBoard(direction back.BoardDirection, limit int, w io.Writer) error {
	board, err := bot.back.GetTeamBoard(direction, limit)
	if err != nil {
		return err
	}

	if len(board) == 0 {
		fmt.Fprint(w, "No team has won 3 games yet.")
		return nil
	}

	fmt.Fprintln(w, "```")
	for k, v := range board {
		fmt.Fprintf(
			w, "%2d. %-30s %4d (%d-%d, %.0f %%)\n",
			k+1, v.PlayerA+" / "+v.PlayerB, v.Rating, v.Wins, v.Losses, v.WinPercentage,
		)
	}
	fmt.Fprint(w, "```")

	return nil
}
