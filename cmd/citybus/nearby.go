package main

import (
	"github.com/mamalakic/patras-citybus-cli/internal/location"
	"github.com/spf13/cobra"
)

var nearbyCmd = &cobra.Command{
	Use:   "nearby",
	Short: "Lists stops within a radius of a location",
	Long: `Lists cached stops within a radius of a location, closest first.
The location comes from --lat/--lng, or from the device via termux-location
when the flags are omitted.`,
	Args: cobra.NoArgs,
	RunE: nearby,
}

var (
	nearbyRadius float64
	nearbyLat    float64
	nearbyLng    float64
)

func init() {
	nearbyCmd.Flags().Float64Var(&nearbyRadius, "radius", 500, "search radius in meters")
	nearbyCmd.Flags().Float64Var(&nearbyLat, "lat", 0, "latitude of the search origin")
	nearbyCmd.Flags().Float64Var(&nearbyLng, "lng", 0, "longitude of the search origin")
	rootCmd.AddCommand(nearbyCmd)
}

func nearby(cmd *cobra.Command, args []string) error {
	var provider location.Provider = location.TermuxLocator{}
	if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng") {
		provider = location.Fixed{Lat: nearbyLat, Lng: nearbyLng}
	}

	lat, lng, err := provider.Locate()
	if err != nil {
		return err
	}

	directory, err := stopSvc.Directory()
	if err != nil {
		return err
	}

	results := location.FindNearby(directory, lat, lng, nearbyRadius)
	renderNearby(cmd.OutOrStdout(), results)
	return nil
}
