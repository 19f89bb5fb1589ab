package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/set-night/chatserv/internal/domain"
)

type ChatStore struct {
	db *pgxpool.Pool
}

func NewChatStore(db *pgxpool.Pool) *ChatStore {
	return &ChatStore{db: db}
}

func (s *ChatStore) Create(ctx context.Context, title string) (*domain.Chat, error) {
	chat := &domain.Chat{Title: title}
	err := s.db.QueryRow(ctx,
		`INSERT INTO chats (title) VALUES ($1) RETURNING id, created_at`,
		title,
	).Scan(&chat.ID, &chat.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert chat: %w", err)
	}
	return chat, nil
}

func (s *ChatStore) GetByID(ctx context.Context, id int64) (*domain.Chat, error) {
	chat := &domain.Chat{}
	err := s.db.QueryRow(ctx,
		`SELECT id, title, created_at FROM chats WHERE id = $1`,
		id,
	).Scan(&chat.ID, &chat.Title, &chat.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrChatNotFound
		}
		return nil, fmt.Errorf("select chat: %w", err)
	}
	return chat, nil
}

func (s *ChatStore) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM chats WHERE id = $1)`,
		id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check chat exists: %w", err)
	}
	return exists, nil
}

// Delete removes the chat and every message bound to it in one
// transaction. The schema also carries ON DELETE CASCADE, but the
// explicit message delete keeps the unit of work visible.
func (s *ChatStore) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete chat: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM messages WHERE chat_id = $1`, id); err != nil {
		return fmt.Errorf("delete chat messages: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM chats WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete chat: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrChatNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete chat: %w", err)
	}
	return nil
}
