package back // nolint:testpackage

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/mattn/go-sqlite3"
)

func createTestBack(t *testing.T) *Back {
	t.Helper()

	f, err := ioutil.TempFile("", "*.db")
	if err != nil {
		t.Fatal(err)
	}
	path := f.Name()
	f.Close()
	t.Cleanup(func() {
		os.Remove(path)
	})

	migrator, err := migrate.New(
		"file://../../resources/migrations",
		"sqlite3://"+path,
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := migrator.Up(); err != nil {
		t.Fatal(err)
	}
	migrator.Close()

	back, err := New("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}

	return back
}

func createFixturedTestBack(t *testing.T) *Back {
	t.Helper()
	back := createTestBack(t)

	for _, v := range []string{"alice", "bob", "carol", "dave", "erin", "frank"} {
		if _, err := back.RegisterPlayer(v); err != nil {
			t.Fatal(err)
		}
	}

	return back
}
