package drift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanview/argo-backend-go/internal/models"
)

func point(id int64, lat, lon float64, ts time.Time) models.TrajectoryPoint {
	return models.TrajectoryPoint{
		ID:        id,
		Latitude:  lat,
		Longitude: lon,
		Timestamp: ts,
		Status:    models.StatusActive,
	}
}

func TestBuildSeries_EquatorOneDegree(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	points := []models.TrajectoryPoint{
		point(1, 0, 0, t0),
		point(2, 0, 1, t0.Add(time.Hour)),
	}

	records := BuildSeries(points)
	require.Len(t, records, 1)

	r := records[0]
	assert.InDelta(t, 111.19, r.DistanceKm, 0.05)
	assert.InDelta(t, 111.19, r.DisplacementKm, 0.05)
	// Raw speed would be ~111 km/h; clamped as GPS noise
	assert.Equal(t, MaxSpeedKmh, r.SpeedKmh)
	assert.InDelta(t, 90, r.DirectionDeg, 1e-6)
	assert.Equal(t, 0.0, r.Latitude)
	assert.Equal(t, 1.0, r.Longitude)
	assert.Equal(t, t0.Add(time.Hour), r.Timestamp)
}

func TestBuildSeries_EmptyAndSinglePoint(t *testing.T) {
	t0 := time.Now()
	assert.Empty(t, BuildSeries(nil))
	assert.Empty(t, BuildSeries([]models.TrajectoryPoint{}))
	assert.Empty(t, BuildSeries([]models.TrajectoryPoint{point(1, 10, 20, t0)}))
}

func TestBuildSeries_RecordCount(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for n := 2; n <= 8; n++ {
		points := make([]models.TrajectoryPoint, 0, n)
		for i := 0; i < n; i++ {
			points = append(points, point(int64(i+1), float64(i)*0.01, float64(i)*0.01, t0.Add(time.Duration(i)*time.Hour)))
		}
		assert.Len(t, BuildSeries(points), n-1)
	}
}

func TestBuildSeries_DuplicateTimestampYieldsZeroSpeed(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	points := []models.TrajectoryPoint{
		point(1, 0, 0, t0),
		point(2, 0, 0.01, t0.Add(6*time.Hour)),
		point(3, 0, 0.02, t0.Add(6*time.Hour)), // same timestamp as previous fix
	}

	records := BuildSeries(points)
	require.Len(t, records, 2)
	assert.Greater(t, records[0].SpeedKmh, 0.0)
	assert.Equal(t, 0.0, records[1].SpeedKmh)
	// Distance still accumulates over the degenerate interval
	assert.Greater(t, records[1].DistanceKm, records[0].DistanceKm)
}

func TestBuildSeries_BackwardsTimestampYieldsZeroSpeed(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	points := []models.TrajectoryPoint{
		point(1, 0, 0, t0),
		point(2, 0, 0.01, t0.Add(-time.Hour)),
	}

	records := BuildSeries(points)
	require.Len(t, records, 1)
	assert.Equal(t, 0.0, records[0].SpeedKmh)
}

func TestBuildSeries_Invariants(t *testing.T) {
	// A wandering path: displacement never exceeds cumulative distance,
	// cumulative distance never decreases, speed stays clamped, bearing in range.
	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	coords := [][2]float64{
		{10.0, 150.0},
		{10.2, 150.3},
		{10.1, 150.6},
		{9.8, 150.5},
		{9.9, 150.1},
		{10.0, 150.0}, // back at the start
		{10.0, 150.0}, // holds position
	}

	points := make([]models.TrajectoryPoint, 0, len(coords))
	for i, c := range coords {
		points = append(points, point(int64(i+1), c[0], c[1], t0.Add(time.Duration(i*10)*time.Hour)))
	}

	records := BuildSeries(points)
	require.Len(t, records, len(coords)-1)

	prevDistance := 0.0
	for i, r := range records {
		assert.LessOrEqual(t, r.DisplacementKm, r.DistanceKm+1e-9, "record %d", i)
		assert.GreaterOrEqual(t, r.DistanceKm, prevDistance, "record %d", i)
		assert.GreaterOrEqual(t, r.SpeedKmh, 0.0, "record %d", i)
		assert.LessOrEqual(t, r.SpeedKmh, MaxSpeedKmh, "record %d", i)
		assert.GreaterOrEqual(t, r.DirectionDeg, 0.0, "record %d", i)
		assert.Less(t, r.DirectionDeg, 360.0, "record %d", i)
		prevDistance = r.DistanceKm
	}

	// The loop closes: final displacement is ~0 while distance is large
	last := records[len(records)-1]
	assert.InDelta(t, 0, last.DisplacementKm, 1e-6)
	assert.Greater(t, last.DistanceKm, 100.0)
}

func TestBuildSeries_DoesNotMutateInput(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	points := []models.TrajectoryPoint{
		point(1, 5, 5, t0),
		point(2, 5.1, 5.1, t0.Add(time.Hour)),
	}
	orig := make([]models.TrajectoryPoint, len(points))
	copy(orig, points)

	BuildSeries(points)
	assert.Equal(t, orig, points)
}
