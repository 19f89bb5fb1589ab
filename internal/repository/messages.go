package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/set-night/chatserv/internal/domain"
)

type MessageStore struct {
	db *pgxpool.Pool
}

func NewMessageStore(db *pgxpool.Pool) *MessageStore {
	return &MessageStore{db: db}
}

func (s *MessageStore) Create(ctx context.Context, chatID int64, text string) (*domain.Message, error) {
	msg := &domain.Message{ChatID: chatID, Text: text}
	err := s.db.QueryRow(ctx,
		`INSERT INTO messages (chat_id, text) VALUES ($1, $2) RETURNING id, created_at`,
		chatID, text,
	).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert message: %w", err)
	}
	return msg, nil
}

// ListRecent returns up to limit messages of a chat, newest first.
// Ties on created_at fall back to id order so the result is stable.
func (s *MessageStore) ListRecent(ctx context.Context, chatID int64, limit int) ([]domain.Message, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, chat_id, text, created_at
		 FROM messages
		 WHERE chat_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`,
		chatID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("select messages: %w", err)
	}
	defer rows.Close()

	messages := make([]domain.Message, 0, limit)
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(&msg.ID, &msg.ChatID, &msg.Text, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}
	return messages, nil
}
