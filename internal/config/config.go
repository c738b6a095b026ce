package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

type Config struct {
	// DiscordListenIDs is a list of channel ID where the bot will listen and
	// accept commands. PMs are always listened to.
	DiscordListenIDs []string

	// Who is allowed to use `!dev` commands.
	DiscordAdminUserID string

	DiscordToken   string
	HTTPListenAddr string
}

func NewFromUserConfigDir() (*Config, error) {
	c := &Config{
		HTTPListenAddr: "127.0.0.1:3001",
	}
	if err := c.ReloadFromUserConfigDir(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) expandFromEnv() {
	vars := []struct {
		src string
		dst *string
	}{
		{"FOOS_DISCORD_TOKEN", &c.DiscordToken},
		{"FOOS_DISCORD_ADMIN_USER", &c.DiscordAdminUserID},
		{"FOOS_HTTP_LISTEN", &c.HTTPListenAddr},
	}

	for _, v := range vars {
		if str := os.Getenv(v.src); str != "" {
			*v.dst = str
		}
	}
}

func (c *Config) ReloadFromUserConfigDir() error {
	defer c.expandFromEnv()

	path, err := getOrCreateUserConfigPath()
	if err != nil {
		return err
	}
	log.Printf("debug: reading conf from %s", path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(c)
}

func getOrCreateUserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(configDir, "foos")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("unable to create config directory: %w", err)
	}

	return filepath.Join(dir, "config.json"), nil
}
