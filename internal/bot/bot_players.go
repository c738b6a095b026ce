package bot

import (
	"database/sql"
	"errors"
	"fmt"
	"foos/internal/util"
	"io"

	"github.com/bwmarrin/discordgo"
)

func (bot *Bot) cmdCreateUser(m *discordgo.Message, args []string, w io.Writer) error {
	if len(args) != 1 {
		return util.ErrPublic("usage: !createuser NAME")
	}

	player, err := bot.back.RegisterDiscordPlayer(m.Author.ID, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Created player `%s` with a rating of %d.", player.Name, player.Rating)
	return nil
}

func (bot *Bot) cmdElo(_ *discordgo.Message, args []string, w io.Writer) error {
	if len(args) != 1 {
		return util.ErrPublic("usage: !elo NAME")
	}

	stats, err := bot.back.GetPlayerStats(args[0])
	if errors.Is(err, sql.ErrNoRows) {
		return util.ErrPublic("there is no player with that username")
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(
		w,
		"`%s` is rated %d with %d wins and %d losses (%.0f %%), %d goals scored and %d allowed.",
		stats.Username, stats.Rating,
		stats.Wins, stats.Losses, stats.WinPercentage,
		stats.GoalsScored, stats.GoalsAllowed,
	)
	return nil
}

func (bot *Bot) cmdTeam(_ *discordgo.Message, args []string, w io.Writer) error {
	if len(args) != 2 {
		return util.ErrPublic("usage: !team NAME NAME")
	}

	stats, err := bot.back.GetTeamStats(args[0], args[1])
	if errors.Is(err, sql.ErrNoRows) {
		return util.ErrPublic("those two players never played together")
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(
		w,
		"`%s` and `%s` are rated %d as a team with %d wins and %d losses (%.0f %%), %d goals scored and %d allowed.",
		stats.PlayerA, stats.PlayerB, stats.Rating,
		stats.Wins, stats.Losses, stats.WinPercentage,
		stats.GoalsScored, stats.GoalsAllowed,
	)
	return nil
}
