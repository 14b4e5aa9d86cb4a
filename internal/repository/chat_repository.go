package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/oceanview/argo-backend-go/internal/models"
)

// ChatRepository handles database operations for assistant conversations
type ChatRepository struct {
	db *sql.DB
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *sql.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// AppendMessage stores one conversation message
func (r *ChatRepository) AppendMessage(m *models.ChatMessage) error {
	result, err := r.db.Exec(`
		INSERT INTO chat_messages (session_id, role, content, created_at)
		VALUES (?, ?, ?, ?)`,
		m.SessionID, m.Role, m.Content, m.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}

	m.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted message id: %w", err)
	}
	return nil
}

// GetHistory returns the most recent messages of a session in chronological
// order, capped at limit
func (r *ChatRepository) GetHistory(sessionID string, limit int) ([]models.ChatMessage, error) {
	if limit < 1 {
		limit = 20
	}

	rows, err := r.db.Query(`
		SELECT id, session_id, role, content, created_at FROM (
			SELECT id, session_id, role, content, created_at
			FROM chat_messages
			WHERE session_id = ?
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		) ORDER BY created_at, id`,
		sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat history: %w", err)
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		var createdAt int64
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		m.CreatedAt = time.Unix(createdAt, 0).UTC()
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
