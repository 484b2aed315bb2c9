package main

import (
	"github.com/spf13/cobra"
)

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Shows live bus times for a stop",
	Args:  cobra.NoArgs,
	RunE:  live,
}

var liveStop int

func init() {
	liveCmd.Flags().IntVar(&liveStop, "stop", 0, "stop code (default from config)")
	rootCmd.AddCommand(liveCmd)
}

func live(cmd *cobra.Command, args []string) error {
	stop := liveStop
	if !cmd.Flags().Changed("stop") {
		stop = cfg.DefaultStop
	}

	resp, err := client.FetchLive(stop)
	if err != nil {
		return err
	}

	renderLive(cmd.OutOrStdout(), resp.Vehicles)
	return nil
}
