package service

import (
	"fmt"

	"github.com/oceanview/argo-backend-go/internal/drift"
	"github.com/oceanview/argo-backend-go/internal/models"
	"github.com/oceanview/argo-backend-go/internal/repository"
	"github.com/oceanview/argo-backend-go/internal/stats"
)

// FloatService handles business logic for Argo floats
type FloatService struct {
	floatRepo      *repository.FloatRepository
	trajectoryRepo *repository.TrajectoryRepository
}

// NewFloatService creates a new float service
func NewFloatService(floatRepo *repository.FloatRepository, trajectoryRepo *repository.TrajectoryRepository) *FloatService {
	return &FloatService{
		floatRepo:      floatRepo,
		trajectoryRepo: trajectoryRepo,
	}
}

// ListFloats returns all known floats
func (s *FloatService) ListFloats() ([]models.Float, error) {
	floats, err := s.floatRepo.ListFloats()
	if err != nil {
		return nil, fmt.Errorf("failed to list floats: %w", err)
	}
	return floats, nil
}

// GetFloatByID retrieves a single float by ID
func (s *FloatService) GetFloatByID(id int64) (*models.Float, error) {
	f, err := s.floatRepo.GetFloatByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get float: %w", err)
	}
	if f == nil {
		return nil, fmt.Errorf("float not found")
	}
	return f, nil
}

// GetFloatSummary derives dashboard aggregates from a float's full trajectory
func (s *FloatService) GetFloatSummary(id int64) (*models.FloatSummary, error) {
	if _, err := s.GetFloatByID(id); err != nil {
		return nil, err
	}

	points, err := s.trajectoryRepo.GetFullTrajectory(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load trajectory: %w", err)
	}

	summary := &models.FloatSummary{
		FloatID:    id,
		PointCount: len(points),
	}

	records := drift.BuildSeries(points)
	if len(records) > 0 {
		last := records[len(records)-1]
		summary.PathLengthKm = last.DistanceKm
		summary.DisplacementKm = last.DisplacementKm

		speeds := make([]float64, 0, len(records))
		for _, r := range records {
			speeds = append(speeds, r.SpeedKmh)
		}
		summary.MeanSpeedKmh = stats.Mean(speeds)
		summary.MaxSpeedKmh = stats.Max(speeds)
	}

	var temps, sals, depths []float64
	for _, p := range points {
		if p.Temperature != nil {
			temps = append(temps, *p.Temperature)
		}
		if p.Salinity != nil {
			sals = append(sals, *p.Salinity)
		}
		if p.Depth != nil {
			depths = append(depths, *p.Depth)
		}
	}
	summary.TemperatureC = readingStats(temps)
	summary.SalinityPSU = readingStats(sals)
	summary.DepthM = readingStats(depths)

	return summary, nil
}

func readingStats(values []float64) models.ReadingStats {
	if len(values) == 0 {
		return models.ReadingStats{}
	}
	return models.ReadingStats{
		Count:  len(values),
		Mean:   stats.Mean(values),
		Min:    stats.Min(values),
		Max:    stats.Max(values),
		StdDev: stats.StdDev(values),
		P50:    stats.Median(values),
	}
}
