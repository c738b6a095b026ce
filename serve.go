package main

import (
	"foos/internal/back"
	"foos/internal/bot"
	"foos/internal/config"
	"foos/internal/web"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

func serve(databasePath string) error {
	conf, err := config.NewFromUserConfigDir()
	if err != nil {
		return err
	}

	b, err := back.New("sqlite3", databasePath)
	if err != nil {
		return err
	}

	done := make(chan struct{})
	signaled := make(chan os.Signal, 1)
	signal.Notify(signaled, syscall.SIGINT, syscall.SIGTERM)

	discord, err := bot.New(b, conf)
	if err != nil {
		return err
	}

	server := web.NewServer(b, conf.HTTPListenAddr)

	var wg sync.WaitGroup
	go discord.Serve(&wg, done)
	go server.Serve(&wg, done)

	sig := <-signaled
	log.Printf("received signal %d", sig)
	close(done)
	wg.Wait()

	log.Print("shutdown complete")

	return nil
}

func recalculate(databasePath string) error {
	b, err := back.New("sqlite3", databasePath)
	if err != nil {
		return err
	}

	return b.Recalculate()
}
