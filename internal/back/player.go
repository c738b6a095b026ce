package back

import (
	"fmt"
	"foos/internal/util"
	"strings"
	"time"
	"unicode"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"gopkg.in/guregu/null.v4"
)

// A Player is a single competitor known by its username. Its Rating is
// derived state: the Match ledger replayed in order is the authority, the
// stored value is a cache of that replay.
type Player struct {
	ID        util.UUIDAsBlob
	CreatedAt util.TimeAsTimestamp
	Name      string
	DiscordID null.String
	Rating    int
}

func NewPlayer(name string, rules Rules) Player {
	return Player{
		ID:        util.NewUUIDAsBlob(),
		CreatedAt: util.TimeAsTimestamp(time.Now()),
		Name:      name,
		Rating:    rules.StartingRating,
	}
}

// NormalizeName lowercases a username so lookups are case-insensitive.
func NormalizeName(name string) string {
	return strings.ToLower(name)
}

func validateName(name string) error {
	if name == "" {
		return util.ErrPublic("username cannot be empty")
	}

	for _, r := range name {
		if !unicode.IsLetter(r) {
			return util.ErrPublic("username must be alphabetic")
		}
	}

	return nil
}

func (p *Player) insert(tx *sqlx.Tx) error {
	query, args, err := squirrel.Insert("Player").SetMap(squirrel.Eq{
		"ID":        p.ID,
		"CreatedAt": p.CreatedAt,
		"Name":      p.Name,
		"DiscordID": p.DiscordID,
		"Rating":    p.Rating,
	}).ToSql()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return err
	}

	return nil
}

func (p *Player) update(tx *sqlx.Tx) error {
	query, args, err := squirrel.Update("Player").SetMap(squirrel.Eq{
		"DiscordID": p.DiscordID,
		"Rating":    p.Rating,
	}).Where("Player.ID = ?", p.ID).ToSql()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return err
	}

	return nil
}

func getPlayerByName(tx *sqlx.Tx, name string) (Player, error) {
	var ret Player
	query := `SELECT * FROM Player WHERE Player.Name = ? LIMIT 1`
	if err := tx.Get(&ret, query, name); err != nil {
		return Player{}, err
	}

	return ret, nil
}

// RegisterPlayer creates a player at the starting rating.
func (b *Back) RegisterPlayer(name string) (Player, error) {
	return b.registerPlayer(null.String{}, name)
}

// RegisterDiscordPlayer creates a player like RegisterPlayer and remembers
// which Discord account registered it.
func (b *Back) RegisterDiscordPlayer(discordID, name string) (Player, error) {
	return b.registerPlayer(null.StringFrom(discordID), name)
}

func (b *Back) registerPlayer(discordID null.String, name string) (player Player, _ error) {
	name = NormalizeName(name)
	if err := validateName(name); err != nil {
		return Player{}, err
	}

	if err := b.transaction(func(tx *sqlx.Tx) error {
		if _, err := getPlayerByName(tx, name); err == nil {
			return util.ErrPublic(fmt.Sprintf("a player named `%s` already exists", name))
		}

		player = NewPlayer(name, b.rules)
		player.DiscordID = discordID

		return player.insert(tx)
	}); err != nil {
		return Player{}, err
	}

	return player, nil
}
