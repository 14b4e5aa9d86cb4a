package mock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanview/argo-backend-go/internal/models"
)

func TestGenerator_Deterministic(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	a := NewGenerator(7).Trajectory(1, start, 40)
	b := NewGenerator(7).Trajectory(1, start, 40)
	assert.Equal(t, a, b)

	c := NewGenerator(8).Trajectory(1, start, 40)
	assert.NotEqual(t, a, c)
}

func TestGenerator_TrajectoryShape(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	points := NewGenerator(42).Trajectory(3, start, 60)
	require.Len(t, points, 60)

	for i, p := range points {
		assert.Equal(t, int64(3), p.FloatID)
		assert.GreaterOrEqual(t, p.Latitude, -90.0, "point %d", i)
		assert.LessOrEqual(t, p.Latitude, 90.0, "point %d", i)
		assert.GreaterOrEqual(t, p.Longitude, -180.0, "point %d", i)
		assert.LessOrEqual(t, p.Longitude, 180.0, "point %d", i)

		if i > 0 {
			assert.True(t, p.Timestamp.After(points[i-1].Timestamp), "timestamps not increasing at %d", i)
		}

		// Sensor payload is all-or-nothing per fix
		if p.Depth != nil {
			assert.NotNil(t, p.Temperature)
			assert.NotNil(t, p.Salinity)
			assert.NotNil(t, p.CycleNumber)
			assert.Greater(t, *p.Depth, 0.0)
		} else {
			assert.Nil(t, p.Temperature)
		}
	}

	// Last fix is flagged as the current position
	assert.Equal(t, models.StatusCurrent, points[len(points)-1].Status)
}

func TestGenerator_Float(t *testing.T) {
	g := NewGenerator(1)
	f := g.Float(1)

	assert.Contains(t, f.Name, "WMO")
	assert.GreaterOrEqual(t, f.BatteryPercent, 70.0)
	assert.LessOrEqual(t, f.BatteryPercent, 100.0)
	assert.Equal(t, models.StatusActive, f.Status)
}
