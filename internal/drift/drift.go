package drift

import (
	"github.com/oceanview/argo-backend-go/internal/models"
	"github.com/oceanview/argo-backend-go/internal/spatial"
)

// MaxSpeedKmh caps reported drift speed. A drifting float rarely exceeds a few
// km/h; faster pairwise speeds are GPS noise and are clamped rather than
// reported raw.
const MaxSpeedKmh = 10.0

// BuildSeries walks a time-ordered trajectory pairwise and derives one drift
// record per point after the first: speed and bearing over the interval,
// cumulative path length from the first fix, and straight-line displacement
// from the first fix.
//
// Fewer than two points yields an empty series. Equal or backwards timestamps
// degrade that record's speed to 0 instead of dividing by zero. The input is
// never mutated.
func BuildSeries(points []models.TrajectoryPoint) []models.DriftRecord {
	if len(points) < 2 {
		return []models.DriftRecord{}
	}

	records := make([]models.DriftRecord, 0, len(points)-1)
	origin := points[0]
	cumulativeKm := 0.0

	for i := 1; i < len(points); i++ {
		prev := points[i-1]
		curr := points[i]

		legKm := spatial.Distance(prev.Latitude, prev.Longitude, curr.Latitude, curr.Longitude)
		cumulativeKm += legKm

		speed := 0.0
		hours := curr.Timestamp.Sub(prev.Timestamp).Hours()
		if hours > 0 {
			speed = legKm / hours
		}
		if speed > MaxSpeedKmh {
			speed = MaxSpeedKmh
		}

		records = append(records, models.DriftRecord{
			Timestamp:      curr.Timestamp,
			SpeedKmh:       speed,
			DirectionDeg:   spatial.Bearing(prev.Latitude, prev.Longitude, curr.Latitude, curr.Longitude),
			Latitude:       curr.Latitude,
			Longitude:      curr.Longitude,
			DistanceKm:     cumulativeKm,
			DisplacementKm: spatial.Distance(origin.Latitude, origin.Longitude, curr.Latitude, curr.Longitude),
		})
	}

	return records
}
