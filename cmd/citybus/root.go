package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "citybus",
	Short: "Bus times for Patras CityBus stops",
	Long: `citybus fetches scheduled and live bus times for Patras CityBus stops
using the official API. Stop names and coordinates are cached locally after
the first run. Greek output is supported.`,
	SilenceUsage: true,
}
