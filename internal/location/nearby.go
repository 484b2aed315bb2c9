// Package location handles distance math and nearby-stop search
package location

import (
	"sort"

	"github.com/mamalakic/patras-citybus-cli/internal/models"
)

// FindNearby returns the stops within radiusMeters of a point, sorted by
// ascending distance. Stops without usable coordinates are skipped, never
// fatal. Ties keep directory order. An empty result is not an error.
func FindNearby(stops []models.StopRecord, lat, lng, radiusMeters float64) []models.StopWithDistance {
	var results []models.StopWithDistance

	for _, stop := range stops {
		if !stop.HasCoordinates() {
			continue
		}

		dist := Haversine(lat, lng, float64(*stop.Latitude), float64(*stop.Longitude))
		if dist <= radiusMeters {
			results = append(results, models.StopWithDistance{
				StopRecord:     stop,
				DistanceMeters: dist,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceMeters < results[j].DistanceMeters
	})

	return results
}
