package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/oceanview/argo-backend-go/internal/models"
	"github.com/oceanview/argo-backend-go/internal/service"
	"github.com/oceanview/argo-backend-go/pkg/response"
)

// ChatHandler handles HTTP requests for the dashboard assistant
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// SendMessage handles POST /api/v1/chat
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.chatService.SendMessage(c.Request.Context(), req)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, resp)
}

// GetHistory handles GET /api/v1/chat/:sessionId
func (h *ChatHandler) GetHistory(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		response.BadRequest(c, "Missing session ID")
		return
	}

	history, err := h.chatService.GetHistory(sessionID)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"data":  history,
		"count": len(history),
	})
}
