package service

import (
	"context"
	"fmt"

	"github.com/set-night/chatserv/internal/config"
	"github.com/set-night/chatserv/internal/domain"
)

// ChatStore is the persistence surface the chat operations need.
type ChatStore interface {
	Create(ctx context.Context, title string) (*domain.Chat, error)
	GetByID(ctx context.Context, id int64) (*domain.Chat, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// MessageStore is the persistence surface the message operations need.
type MessageStore interface {
	Create(ctx context.Context, chatID int64, text string) (*domain.Message, error)
	ListRecent(ctx context.Context, chatID int64, limit int) ([]domain.Message, error)
}

type ChatService struct {
	chats    ChatStore
	messages MessageStore
}

func NewChatService(chats ChatStore, messages MessageStore) *ChatService {
	return &ChatService{chats: chats, messages: messages}
}

func (s *ChatService) Create(ctx context.Context, title string) (*domain.Chat, error) {
	title, err := validateField("title", title, config.MaxTitleLen)
	if err != nil {
		return nil, err
	}

	chat, err := s.chats.Create(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("create chat: %w", err)
	}
	return chat, nil
}

// Get returns the chat and up to limit of its messages, newest first.
// The caller is expected to have clamped limit already.
func (s *ChatService) Get(ctx context.Context, id int64, limit int) (*domain.Chat, []domain.Message, error) {
	chat, err := s.chats.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrChatNotFound {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("get chat: %w", err)
	}

	messages, err := s.messages.ListRecent(ctx, id, limit)
	if err != nil {
		return nil, nil, fmt.Errorf("list messages: %w", err)
	}
	return chat, messages, nil
}

func (s *ChatService) Delete(ctx context.Context, id int64) error {
	if err := s.chats.Delete(ctx, id); err != nil {
		if err == domain.ErrChatNotFound {
			return err
		}
		return fmt.Errorf("delete chat: %w", err)
	}
	return nil
}
