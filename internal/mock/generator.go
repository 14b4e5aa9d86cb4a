package mock

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/oceanview/argo-backend-go/internal/models"
	"github.com/oceanview/argo-backend-go/internal/spatial"
)

// Generator produces deterministic demo floats and trajectories for an empty
// database. A fixed seed always yields the same data.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with the given seed
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Float generates one float deployed somewhere in the tropical Pacific
func (g *Generator) Float(index int) models.Float {
	deployed := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(g.rng.Intn(120*24)) * time.Hour)

	return models.Float{
		Name:           fmt.Sprintf("WMO 29%05d", 2700+index),
		Status:         models.StatusActive,
		BatteryPercent: 70 + g.rng.Float64()*30,
		PositionAccKm:  0.1 + g.rng.Float64()*2.4,
		DeployedAt:     deployed,
	}
}

// Trajectory generates n fixes for a float: a bounded random walk on the
// sphere with dive-cycle depth/temperature/salinity readings. Roughly one fix
// in twelve loses its sensor payload, mimicking transmission dropouts.
func (g *Generator) Trajectory(floatID int64, start time.Time, n int) []models.TrajectoryPoint {
	lat := -20 + g.rng.Float64()*40
	lon := 140 + g.rng.Float64()*60
	heading := g.rng.Float64() * 360

	points := make([]models.TrajectoryPoint, 0, n)
	ts := start

	for i := 0; i < n; i++ {
		// Drift: gentle heading wander, 0.5-4 km per surfacing interval
		heading += (g.rng.Float64() - 0.5) * 60
		for heading < 0 {
			heading += 360
		}
		for heading >= 360 {
			heading -= 360
		}
		stepKm := 0.5 + g.rng.Float64()*3.5
		lat, lon = spatial.DestinationPoint(lat, lon, heading, stepKm)

		p := models.TrajectoryPoint{
			FloatID:   floatID,
			Latitude:  lat,
			Longitude: lon,
			Timestamp: ts,
			Status:    models.StatusActive,
		}

		if g.rng.Intn(12) != 0 {
			cycle := i / 5
			depth := g.profileDepth(i % 5)
			temp := g.temperatureAt(depth)
			sal := 34.2 + g.rng.Float64()*0.9
			qc := "1"

			p.Depth = &depth
			p.Temperature = &temp
			p.Salinity = &sal
			p.CycleNumber = &cycle
			p.QCFlag = &qc
		}

		points = append(points, p)
		ts = ts.Add(time.Duration(8+g.rng.Intn(5)) * time.Hour)
	}

	if len(points) > 0 {
		points[len(points)-1].Status = models.StatusCurrent
	}

	return points
}

// profileDepth spreads the five fixes of a cycle over the water column
func (g *Generator) profileDepth(position int) float64 {
	base := float64(position) * 400
	return base + g.rng.Float64()*350 + 10
}

// temperatureAt approximates an open-ocean thermocline
func (g *Generator) temperatureAt(depth float64) float64 {
	switch {
	case depth < 200:
		return 22 - depth*0.04 + g.rng.Float64()*2
	case depth < 1000:
		return 14 - (depth-200)*0.0125 + g.rng.Float64()
	default:
		return 4 - (depth-1000)*0.001 + g.rng.Float64()*0.5
	}
}
