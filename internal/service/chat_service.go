package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/oceanview/argo-backend-go/internal/llm"
	"github.com/oceanview/argo-backend-go/internal/models"
	"github.com/oceanview/argo-backend-go/internal/repository"
)

// systemPrompt frames the assistant for the float dashboard
const systemPrompt = "You are an oceanography assistant for an Argo float telemetry dashboard. " +
	"You help users interpret float trajectories, drift speed and bearing, " +
	"temperature/salinity depth profiles, battery health and quality-control flags. " +
	"Answer concisely and in plain language."

// historyLimit caps how many stored messages are replayed to the model
const historyLimit = 20

// ChatService orchestrates the dashboard's chat assistant
type ChatService struct {
	chatRepo *repository.ChatRepository
	client   *llm.Client
}

// NewChatService creates a new chat service
func NewChatService(chatRepo *repository.ChatRepository, client *llm.Client) *ChatService {
	return &ChatService{
		chatRepo: chatRepo,
		client:   client,
	}
}

// SendMessage stores the user message, asks the model for a reply with the
// session's recent history as context, stores and returns the reply.
// A missing session ID starts a new session.
func (s *ChatService) SendMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	if !s.client.Configured() {
		return nil, fmt.Errorf("chat assistant is not configured: set LLM_API_KEY")
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	if err := s.chatRepo.AppendMessage(&models.ChatMessage{
		SessionID: sessionID,
		Role:      models.RoleUser,
		Content:   req.Message,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return nil, fmt.Errorf("failed to store user message: %w", err)
	}

	history, err := s.chatRepo.GetHistory(sessionID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{Role: models.RoleSystem, Content: systemPrompt})
	for _, m := range history {
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}

	reply, err := s.client.Complete(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("assistant request failed: %w", err)
	}

	if err := s.chatRepo.AppendMessage(&models.ChatMessage{
		SessionID: sessionID,
		Role:      models.RoleAssistant,
		Content:   reply,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return nil, fmt.Errorf("failed to store assistant reply: %w", err)
	}

	return &models.ChatResponse{SessionID: sessionID, Reply: reply}, nil
}

// GetHistory returns a session's recent messages in chronological order
func (s *ChatService) GetHistory(sessionID string) ([]models.ChatMessage, error) {
	history, err := s.chatRepo.GetHistory(sessionID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	return history, nil
}
