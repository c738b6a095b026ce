package bot

import (
	"errors"
	"fmt"
	"foos/internal/back"
	"foos/internal/config"
	"foos/internal/util"
	"io"
	"log"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

type commandHandler func(m *discordgo.Message, args []string, w io.Writer) error

type Bot struct {
	back *back.Back

	startedAt time.Time
	dg        *discordgo.Session
	config    *config.Config

	handlers map[string]commandHandler
}

func New(back *back.Back, conf *config.Config) (*Bot, error) {
	dg, err := discordgo.New("Bot " + conf.DiscordToken)
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		back:      back,
		config:    conf,
		dg:        dg,
		startedAt: time.Now(),
	}

	dg.AddHandler(bot.handleMessage)

	bot.handlers = map[string]commandHandler{
		"!createuser": bot.cmdCreateUser,
		"!elo":        bot.cmdElo,
		"!stats":      bot.cmdElo,
		"!team":       bot.cmdTeam,

		"!record": bot.cmdRecord,
		"!report": bot.cmdRecord,
		"!undo":   bot.cmdUndo,

		"!top":          bot.cmdTop,
		"!leaderboard":  bot.cmdTop,
		"!leaderboards": bot.cmdTop,
		"!bottom":       bot.cmdBottom,
		"!loserboards":  bot.cmdBottom,

		"!dreamteams":     bot.cmdDreamTeams,
		"!nightmareteams": bot.cmdNightmareTeams,

		"!dev":  bot.cmdDev,
		"!help": bot.cmdHelp,
	}

	return bot, nil
}

func (bot *Bot) Serve(wg *sync.WaitGroup, done <-chan struct{}) {
	log.Println("info: starting Discord bot")
	wg.Add(1)
	defer wg.Done()
	if err := bot.dg.Open(); err != nil {
		log.Panic(err)
	}

	<-done

	if err := bot.dg.Close(); err != nil {
		log.Printf("error: could not close Discord bot: %s", err)
	}
}

func (bot *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore webooks, self, bots, non-commands.
	if m.Author == nil || m.Author.ID == s.State.User.ID ||
		m.Author.Bot || !strings.HasPrefix(m.Content, "!") {
		return
	}

	if !bot.isListenedChannel(m.ChannelID) {
		return
	}

	log.Printf(
		"info: <%s(%s)@%s#%s> %s",
		m.Author.String(), m.Author.ID,
		m.GuildID, m.ChannelID,
		m.Content,
	)

	out := newChannelWriter(s, m.ChannelID)
	defer func() {
		if err := out.Flush(); err != nil {
			log.Printf("error: could not send message: %s", err)
		}
	}()

	defer func() {
		r := recover()
		if r != nil {
			out.Reset()
			fmt.Fprintf(out, "Someting went very wrong, please tell <@%s>.", bot.config.DiscordAdminUserID)
			log.Print("panic: ", r)
			log.Print(debug.Stack())
		}
	}()

	if err := bot.dispatch(m.Message, out); err != nil {
		out.Reset()
		fmt.Fprintln(out, "There was an error processing your command.")

		if errors.Is(err, util.ErrPublic("")) {
			fmt.Fprintf(out, "```%s\n```\nIf you need help, send `!help`.", err)
		} else {
			fmt.Fprintf(out, "<@%s> will check the logs when he has time.", bot.config.DiscordAdminUserID)
		}

		log.Printf("error: failed to process command: %s", err)
	}
}

// isListenedChannel tells if commands from a channel should be processed,
// an empty configured list means everything is.
func (bot *Bot) isListenedChannel(channelID string) bool {
	if len(bot.config.DiscordListenIDs) == 0 {
		return true
	}

	for _, v := range bot.config.DiscordListenIDs {
		if v == channelID {
			return true
		}
	}

	return false
}

func parseCommand(cmd string) (string, []string) {
	parts := strings.Split(cmd, " ")

	switch len(parts) {
	case 0:
		return "", nil
	case 1:
		return parts[0], nil
	default:
		return parts[0], parts[1:]
	}
}

func (bot *Bot) dispatch(m *discordgo.Message, w io.Writer) error {
	command, args := parseCommand(strings.ToLower(m.Content))
	handler, ok := bot.handlers[command]
	if !ok {
		return util.ErrPublic(fmt.Sprintf("invalid command: %v", m.Content))
	}

	return handler(m, args, w)
}

func (bot *Bot) cmdHelp(_ *discordgo.Message, _ []string, w io.Writer) error {
	fmt.Fprint(w, strings.ReplaceAll(`Available commands:
'''
# Players
!createuser NAME   # register a new player
!elo NAME          # display a player rating and stats (alias: !stats)
!team NAME NAME    # display the rating and stats of a fixed pair

# Matches
!record W W L L N  # record a match: winners W-W beat losers L-L 5-N
!undo              # delete the latest match and recompute all ratings

# Leaderboards
!top [N] [teams]   # display the N best players (or teams)
!bottom [N] [teams] # display the N worst players (or teams)
'''`, "'''", "```"))

	return nil
}
