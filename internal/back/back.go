package back

import (
	"context"
	"foos/internal/util"

	"github.com/jmoiron/sqlx"
)

// Back holds the whole ladder logic, everything the bot and the webserver
// need goes through here. Each exported operation runs in its own
// transaction against the ledger.
type Back struct {
	db    *sqlx.DB
	rules Rules
}

func New(sqlDriver string, sqlDSN string) (*Back, error) {
	// Why even bother converting names? A single greppable string across all
	// your source code is better than any odd conversion scheme you could ever
	// come up with.
	// HACK: This is global but putting this in init() makes test ugly.
	// As only the Back relies on the DB, this seems like an okay-ish place.
	sqlx.NameMapper = func(v string) string { return v }

	db, err := sqlx.Connect(sqlDriver, sqlDSN)
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer, a single conn is our serialization
	// point for the find-or-create paths.
	db.SetMaxOpenConns(1)

	return &Back{
		db:    db,
		rules: DefaultRules(),
	}, nil
}

// Rules exposes the rating constants the Back was created with.
func (b *Back) Rules() Rules {
	return b.rules
}

func (b *Back) transaction(cb util.TransactionCallback) error {
	return util.Transaction(context.Background(), b.db, cb)
}
