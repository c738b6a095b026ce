package bot

import (
	"errors"
	"fmt"
	"foos/internal/util"
	"io"
	"time"

	"github.com/bwmarrin/discordgo"
)

func (bot *Bot) cmdDev(m *discordgo.Message, args []string, w io.Writer) error {
	if m.Author.ID != bot.config.DiscordAdminUserID {
		return util.ErrPublic("this command is reserved for the bot administrator")
	}

	if len(args) < 1 {
		return util.ErrPublic("usage: !dev error|panic|recalculate|uptime")
	}

	switch args[0] {
	case "error":
		return errors.New("the error you requested")
	case "panic":
		panic("cry me a river")
	case "recalculate":
		if err := bot.back.Recalculate(); err != nil {
			return err
		}

		fmt.Fprint(w, "All ratings were rebuilt from the match history.")
		return nil
	case "uptime":
		fmt.Fprintf(w, "The bot has been up for %s.", time.Since(bot.startedAt).Truncate(time.Second))
		return nil
	default:
		return util.ErrPublic(fmt.Sprintf("unknown !dev command: %s", args[0]))
	}
}
