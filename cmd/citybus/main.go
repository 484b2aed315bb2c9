// Package main is the entry point for the citybus CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mamalakic/patras-citybus-cli/internal/auth"
	"github.com/mamalakic/patras-citybus-cli/internal/citybus"
	"github.com/mamalakic/patras-citybus-cli/internal/config"
	"github.com/mamalakic/patras-citybus-cli/internal/stops"
)

// Shared by all commands, wired once in main.
var (
	cfg     *config.Config
	client  *citybus.Client
	stopSvc *stops.Cache
)

func main() {
	_ = godotenv.Load()

	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Configuration error:", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Configuration error:", err)
		os.Exit(1)
	}

	resolver := auth.NewWebResolver(cfg.HTTPTimeout)
	client = citybus.NewClient(resolver, cfg.HTTPTimeout)
	stopSvc = stops.New(cfg.CacheDir, client)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
