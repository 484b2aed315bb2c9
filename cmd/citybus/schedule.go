package main

import (
	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Shows scheduled bus times for a stop",
	Args:  cobra.NoArgs,
	RunE:  schedule,
}

var (
	scheduleStop int
	scheduleDay  int
)

func init() {
	scheduleCmd.Flags().IntVar(&scheduleStop, "stop", 0, "stop code (default from config)")
	scheduleCmd.Flags().IntVar(&scheduleDay, "day", 0, "day of week, 1=Monday ... 7=Sunday (default from config)")
	rootCmd.AddCommand(scheduleCmd)
}

func schedule(cmd *cobra.Command, args []string) error {
	stop := scheduleStop
	if !cmd.Flags().Changed("stop") {
		stop = cfg.DefaultStop
	}
	day := scheduleDay
	if !cmd.Flags().Changed("day") {
		day = cfg.DefaultDay
	}

	trips, err := client.FetchSchedule(stop, day)
	if err != nil {
		return err
	}

	renderSchedule(cmd.OutOrStdout(), trips)
	return nil
}
