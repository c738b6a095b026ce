package back // nolint:testpackage

import (
	"errors"
	"foos/internal/util"
	"testing"
)

func TestRegisterPlayer(t *testing.T) {
	back := createTestBack(t)

	player, err := back.RegisterPlayer("Zelda")
	if err != nil {
		t.Fatal(err)
	}

	if player.Name != "zelda" {
		t.Errorf("expected a normalized username, got %s", player.Name)
	}
	if player.Rating != 1000 {
		t.Errorf("expected the starting rating, got %d", player.Rating)
	}

	if _, err := back.RegisterPlayer("zELDA"); !errors.Is(err, util.ErrPublic("")) {
		t.Errorf("expected a public error on duplicate username, got %v", err)
	}
}

func TestRegisterPlayerRejectsBadNames(t *testing.T) {
	back := createTestBack(t)

	for _, v := range []string{"", "zelda64", "zel da", "zel-da", "!zelda"} {
		if _, err := back.RegisterPlayer(v); !errors.Is(err, util.ErrPublic("")) {
			t.Errorf("%q: expected a public error, got %v", v, err)
		}
	}

	// Non-ASCII letters are letters too.
	if _, err := back.RegisterPlayer("Ĝanfranko"); err != nil {
		t.Errorf("expected a unicode name to be accepted, got %v", err)
	}
}
