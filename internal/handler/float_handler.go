package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oceanview/argo-backend-go/internal/service"
	"github.com/oceanview/argo-backend-go/pkg/response"
)

// FloatHandler handles HTTP requests for Argo floats
type FloatHandler struct {
	floatService *service.FloatService
}

// NewFloatHandler creates a new float handler
func NewFloatHandler(floatService *service.FloatService) *FloatHandler {
	return &FloatHandler{
		floatService: floatService,
	}
}

// ListFloats handles GET /api/v1/floats
func (h *FloatHandler) ListFloats(c *gin.Context) {
	floats, err := h.floatService.ListFloats()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  floats,
		"count": len(floats),
	})
}

// GetFloat handles GET /api/v1/floats/:id
func (h *FloatHandler) GetFloat(c *gin.Context) {
	id, err := parseFloatID(c)
	if err != nil {
		response.BadRequest(c, "Invalid float ID")
		return
	}

	f, err := h.floatService.GetFloatByID(id)
	if err != nil {
		response.NotFound(c, "Float not found")
		return
	}

	response.Success(c, f)
}

// GetFloatSummary handles GET /api/v1/floats/:id/summary
func (h *FloatHandler) GetFloatSummary(c *gin.Context) {
	id, err := parseFloatID(c)
	if err != nil {
		response.BadRequest(c, "Invalid float ID")
		return
	}

	summary, err := h.floatService.GetFloatSummary(id)
	if err != nil {
		response.NotFound(c, "Float not found")
		return
	}

	response.Success(c, summary)
}

func parseFloatID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
