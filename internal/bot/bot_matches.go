package bot

import (
	"database/sql"
	"errors"
	"fmt"
	"foos/internal/util"
	"io"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

func (bot *Bot) cmdRecord(_ *discordgo.Message, args []string, w io.Writer) error {
	if len(args) != 5 {
		return util.ErrPublic("usage: !record WINNER WINNER LOSER LOSER LOSING_SCORE")
	}

	losingScore, err := strconv.Atoi(args[4])
	if err != nil {
		return util.ErrPublic("the losing score must be a number")
	}

	winningScore := bot.back.Rules().WinningScore
	outcome, err := bot.back.RecordMatch(
		[2]string{args[0], args[1]},
		[2]string{args[2], args[3]},
		winningScore, losingScore,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return util.ErrPublic(err.Error())
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Match recorded. New ratings:")
	for name, rating := range outcome.Players {
		fmt.Fprintf(w, "  `%s`: %d\n", name, rating)
	}
	fmt.Fprintf(
		w, "  winning team: %d, losing team: %d",
		outcome.WinnerTeam, outcome.LoserTeam,
	)
	return nil
}

func (bot *Bot) cmdUndo(_ *discordgo.Message, args []string, w io.Writer) error {
	if len(args) != 0 {
		return util.ErrPublic("usage: !undo")
	}

	deleted, err := bot.back.DeleteLatestMatch()
	if errors.Is(err, sql.ErrNoRows) {
		return util.ErrPublic("there is no match to delete")
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(
		w,
		"Deleted the game where `%s` and `%s` beat `%s` and `%s` %d-%d, all ratings were recomputed.",
		deleted.Winners[0], deleted.Winners[1],
		deleted.Losers[0], deleted.Losers[1],
		deleted.WinningScore, deleted.LosingScore,
	)
	return nil
}
