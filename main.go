package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// Version holds the build-time version string.
var Version = "unknown" // nolint:gochecknoglobals

const databasePath = "./foos.db"

func main() {
	flag.Parse()

	switch flag.Arg(0) { // nolint, TODO
	case "version":
		fmt.Fprintf(os.Stdout, "Foos %s\n", Version)
	case "migrate":
		if err := migrateDatabase(databasePath); err != nil {
			log.Fatal(err)
		}
	case "recalculate":
		if err := recalculate(databasePath); err != nil {
			log.Fatal(err)
		}
	case "serve":
		if err := serve(databasePath); err != nil {
			log.Fatal(err)
		}
	case "dev:fixtures":
		if err := loadFixtures(databasePath); err != nil {
			log.Fatal(err)
		}
	case "help":
		fmt.Fprint(os.Stdout, help())
		return
	default:
		fmt.Fprint(os.Stderr, help())
		os.Exit(1)
	}
}

func help() string {
	return fmt.Sprintf(`
Foos tracks 2v2 table football matches and maintains Elo rankings for
both individual players and fixed player pairs.

Usage: %[1]s COMMAND [ARGS…]

COMMANDS
    dev:fixtures create default data for quick testing during development
    help         display this help
    migrate      create or upgrade the database schema
    recalculate  reset all ratings and replay the whole match ledger
    serve        start the Discord bot and the HTTP server
    version      display the current version
`,
		os.Args[0],
	)
}
