package main

import (
	"foos/internal/back"
)

func loadFixtures(databasePath string) error {
	b, err := back.New("sqlite3", databasePath)
	if err != nil {
		return err
	}

	names := []string{"alice", "bob", "carol", "dave"}
	for _, v := range names {
		if _, err := b.RegisterPlayer(v); err != nil {
			return err
		}
	}

	matches := []struct {
		winners, losers [2]string
		losingScore     int
	}{
		{[2]string{"alice", "bob"}, [2]string{"carol", "dave"}, 2},
		{[2]string{"alice", "carol"}, [2]string{"bob", "dave"}, 4},
		{[2]string{"carol", "dave"}, [2]string{"alice", "bob"}, 0},
	}

	for _, v := range matches {
		if _, err := b.RecordMatch(v.winners, v.losers, 5, v.losingScore); err != nil {
			return err
		}
	}

	return nil
}
