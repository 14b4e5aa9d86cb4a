package service

import (
	"fmt"
	"math"

	"github.com/oceanview/argo-backend-go/internal/drift"
	"github.com/oceanview/argo-backend-go/internal/models"
	"github.com/oceanview/argo-backend-go/internal/profile"
	"github.com/oceanview/argo-backend-go/internal/repository"
)

// TrajectoryService handles business logic for trajectory points and the
// series derived from them
type TrajectoryService struct {
	trajectoryRepo *repository.TrajectoryRepository
}

// NewTrajectoryService creates a new trajectory service
func NewTrajectoryService(trajectoryRepo *repository.TrajectoryRepository) *TrajectoryService {
	return &TrajectoryService{
		trajectoryRepo: trajectoryRepo,
	}
}

// GetTrajectoryPoints retrieves trajectory points with filtering and pagination
func (s *TrajectoryService) GetTrajectoryPoints(filter models.TrajectoryFilter) (*models.TrajectoryPointsResponse, error) {
	// Validate filter
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 100
	}
	if filter.PageSize > 1000 {
		filter.PageSize = 1000
	}

	points, total, err := s.trajectoryRepo.GetTrajectoryPoints(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get trajectory points: %w", err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.PageSize)))

	return &models.TrajectoryPointsResponse{
		Data:       points,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// GetDriftSeries derives the drift series for a float's full trajectory
func (s *TrajectoryService) GetDriftSeries(floatID int64) ([]models.DriftRecord, error) {
	points, err := s.trajectoryRepo.GetFullTrajectory(floatID)
	if err != nil {
		return nil, fmt.Errorf("failed to load trajectory: %w", err)
	}
	return drift.BuildSeries(points), nil
}

// GetProfiles derives depth-ordered profile groups for overlay comparison.
// windowSize <= 0 uses the default window.
func (s *TrajectoryService) GetProfiles(floatID int64, windowSize int) ([]models.ProfileGroup, error) {
	points, err := s.trajectoryRepo.GetFullTrajectory(floatID)
	if err != nil {
		return nil, fmt.Errorf("failed to load trajectory: %w", err)
	}
	return profile.GroupProfiles(points, windowSize), nil
}
