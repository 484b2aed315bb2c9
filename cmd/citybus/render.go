package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/mamalakic/patras-citybus-cli/internal/models"
)

var titleColor = color.New(color.FgCyan, color.Bold)

func renderSchedule(out io.Writer, trips []models.TripEntry) {
	if len(trips) == 0 {
		fmt.Fprintln(out, "No bus times found.")
		return
	}

	titleColor.Fprintln(out, trips[0].StopName)

	w := tabwriter.NewWriter(out, 5, 3, 3, ' ', 0)
	fmt.Fprintln(w, "Time\tRoute\tCode")
	for _, trip := range trips {
		fmt.Fprintf(w, "%s\t%s\t%s\n", trip.TripTime, trip.RouteName, trip.LineCode)
	}
	w.Flush()
}

func renderLive(out io.Writer, vehicles []models.LiveVehicle) {
	if len(vehicles) == 0 {
		fmt.Fprintln(out, "No live vehicles found.")
		return
	}

	w := tabwriter.NewWriter(out, 5, 3, 3, ' ', 0)
	fmt.Fprintln(w, "Mins\tTime\tRoute\tLine")
	now := time.Now()
	for _, v := range vehicles {
		clock := "N/A"
		if v.DepartureMins.Known {
			clock = now.Add(time.Duration(v.DepartureMins.Value) * time.Minute).Format("15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.DepartureMins, clock, v.RouteName, v.LineCode)
	}
	w.Flush()
}

func renderNearby(out io.Writer, results []models.StopWithDistance) {
	if len(results) == 0 {
		fmt.Fprintln(out, "No stops within range.")
		return
	}

	w := tabwriter.NewWriter(out, 5, 3, 3, ' ', 0)
	fmt.Fprintln(w, "Meters\tCode\tName")
	for _, r := range results {
		fmt.Fprintf(w, "%.0f\t%d\t%s\n", r.DistanceMeters, r.Code, r.Name)
	}
	w.Flush()
}
