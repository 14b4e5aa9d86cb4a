package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oceanview/argo-backend-go/internal/models"
	"github.com/oceanview/argo-backend-go/internal/service"
	"github.com/oceanview/argo-backend-go/pkg/response"
)

// TrajectoryHandler handles HTTP requests for trajectory points and derived series
type TrajectoryHandler struct {
	trajectoryService *service.TrajectoryService
}

// NewTrajectoryHandler creates a new trajectory handler
func NewTrajectoryHandler(trajectoryService *service.TrajectoryService) *TrajectoryHandler {
	return &TrajectoryHandler{
		trajectoryService: trajectoryService,
	}
}

// GetTrajectory handles GET /api/v1/floats/:id/trajectory
func (h *TrajectoryHandler) GetTrajectory(c *gin.Context) {
	id, err := parseFloatID(c)
	if err != nil {
		response.BadRequest(c, "Invalid float ID")
		return
	}

	var filter models.TrajectoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	filter.FloatID = id

	result, err := h.trajectoryService.GetTrajectoryPoints(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, result)
}

// GetDriftSeries handles GET /api/v1/floats/:id/drift
func (h *TrajectoryHandler) GetDriftSeries(c *gin.Context) {
	id, err := parseFloatID(c)
	if err != nil {
		response.BadRequest(c, "Invalid float ID")
		return
	}

	records, err := h.trajectoryService.GetDriftSeries(id)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  records,
		"count": len(records),
	})
}

// GetProfiles handles GET /api/v1/floats/:id/profiles
func (h *TrajectoryHandler) GetProfiles(c *gin.Context) {
	id, err := parseFloatID(c)
	if err != nil {
		response.BadRequest(c, "Invalid float ID")
		return
	}

	windowSize := 0
	if raw := c.Query("windowSize"); raw != "" {
		windowSize, err = strconv.Atoi(raw)
		if err != nil || windowSize < 1 {
			response.BadRequest(c, "Invalid windowSize parameter")
			return
		}
	}

	groups, err := h.trajectoryService.GetProfiles(id, windowSize)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  groups,
		"count": len(groups),
	})
}
