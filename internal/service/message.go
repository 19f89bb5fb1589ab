package service

import (
	"context"
	"fmt"

	"github.com/set-night/chatserv/internal/config"
	"github.com/set-night/chatserv/internal/domain"
)

type MessageService struct {
	chats    ChatStore
	messages MessageStore
}

func NewMessageService(chats ChatStore, messages MessageStore) *MessageService {
	return &MessageService{chats: chats, messages: messages}
}

// Append adds a message to an existing chat. The chat existence check
// runs before text validation, so a missing chat wins over bad text.
func (s *MessageService) Append(ctx context.Context, chatID int64, text string) (*domain.Message, error) {
	exists, err := s.chats.Exists(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("check chat: %w", err)
	}
	if !exists {
		return nil, domain.ErrChatNotFound
	}

	text, err = validateField("text", text, config.MaxTextLen)
	if err != nil {
		return nil, err
	}

	msg, err := s.messages.Create(ctx, chatID, text)
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return msg, nil
}
