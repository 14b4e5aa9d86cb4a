package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanview/argo-backend-go/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func profilePoint(id int64, depth, temp float64) models.TrajectoryPoint {
	return models.TrajectoryPoint{
		ID:          id,
		Latitude:    10,
		Longitude:   150,
		Timestamp:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Hour),
		Depth:       floatPtr(depth),
		Temperature: floatPtr(temp),
	}
}

func TestGroupProfiles_TwelvePointsWindowFive(t *testing.T) {
	depths := []float64{500, 100, 300, 200, 400, 50, 250, 150, 350, 450, 600, 10}
	points := make([]models.TrajectoryPoint, 0, len(depths))
	for i, d := range depths {
		points = append(points, profilePoint(int64(i+1), d, 15-d/100))
	}

	groups := GroupProfiles(points, 5)
	require.Len(t, groups, 3)
	assert.Len(t, groups[0].Points, 5)
	assert.Len(t, groups[1].Points, 5)
	assert.Len(t, groups[2].Points, 2)

	for gi, g := range groups {
		assert.Equal(t, gi, g.Index)
		for i := 1; i < len(g.Points); i++ {
			assert.LessOrEqual(t, *g.Points[i-1].Depth, *g.Points[i].Depth,
				"group %d not sorted by depth", gi)
		}
		assert.Equal(t, *g.Points[0].Depth, g.MinDepthM)
		assert.Equal(t, *g.Points[len(g.Points)-1].Depth, g.MaxDepthM)
	}
}

func TestGroupProfiles_FiltersMissingReadings(t *testing.T) {
	points := []models.TrajectoryPoint{
		profilePoint(1, 100, 12),
		{ID: 2, Depth: floatPtr(200)},       // no temperature
		{ID: 3, Temperature: floatPtr(11)},  // no depth
		{ID: 4},                             // neither
		profilePoint(5, 300, 9),
		profilePoint(6, 150, 10),
	}

	groups := GroupProfiles(points, 5)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Points, 3)
	for _, p := range groups[0].Points {
		assert.NotNil(t, p.Depth)
		assert.NotNil(t, p.Temperature)
	}
}

func TestGroupProfiles_DiscardsSingletonWindow(t *testing.T) {
	// 6 points with window 5: the trailing window has one point and is dropped
	points := make([]models.TrajectoryPoint, 0, 6)
	for i := 0; i < 6; i++ {
		points = append(points, profilePoint(int64(i+1), float64(100+i*50), 10))
	}

	groups := GroupProfiles(points, 5)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Points, 5)
}

func TestGroupProfiles_DefaultWindowSize(t *testing.T) {
	points := make([]models.TrajectoryPoint, 0, 10)
	for i := 0; i < 10; i++ {
		points = append(points, profilePoint(int64(i+1), float64(100+i*50), 10))
	}

	assert.Len(t, GroupProfiles(points, 0), 2)
	assert.Len(t, GroupProfiles(points, -3), 2)
}

func TestGroupProfiles_Empty(t *testing.T) {
	assert.Empty(t, GroupProfiles(nil, 5))
	assert.Empty(t, GroupProfiles([]models.TrajectoryPoint{profilePoint(1, 100, 10)}, 5))
}

func TestGroupProfiles_DoesNotMutateInput(t *testing.T) {
	points := []models.TrajectoryPoint{
		profilePoint(1, 500, 5),
		profilePoint(2, 100, 14),
		profilePoint(3, 300, 9),
	}
	origFirst := *points[0].Depth

	GroupProfiles(points, 3)
	assert.Equal(t, origFirst, *points[0].Depth)
	assert.Equal(t, int64(1), points[0].ID) // order untouched
}

func TestGroupProfilesByCycle(t *testing.T) {
	mk := func(id int64, cycle int, depth float64) models.TrajectoryPoint {
		p := profilePoint(id, depth, 10)
		p.CycleNumber = intPtr(cycle)
		return p
	}

	points := []models.TrajectoryPoint{
		mk(1, 2, 300),
		mk(2, 1, 400),
		mk(3, 1, 100),
		mk(4, 2, 200),
		mk(5, 3, 500),            // singleton cycle, dropped
		profilePoint(6, 250, 10), // no cycle number, dropped
	}

	groups := GroupProfilesByCycle(points)
	require.Len(t, groups, 2)

	// cycle 1 first, depth ascending
	assert.Equal(t, []float64{100, 400}, []float64{*groups[0].Points[0].Depth, *groups[0].Points[1].Depth})
	// cycle 2 second
	assert.Equal(t, []float64{200, 300}, []float64{*groups[1].Points[0].Depth, *groups[1].Points[1].Depth})
}
