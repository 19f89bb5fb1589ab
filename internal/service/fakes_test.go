package service

import (
	"context"
	"time"

	"github.com/set-night/chatserv/internal/domain"
)

// In-memory stand-ins for the pgx stores. Message order follows
// insertion order with strictly increasing timestamps, so ListRecent
// can mirror the ORDER BY created_at DESC, id DESC query.
type fakeChatStore struct {
	chats  map[int64]*domain.Chat
	nextID int64
	clock  *fakeClock
	// shared so chat deletion can cascade
	messages *fakeMessageStore
}

type fakeMessageStore struct {
	byChat map[int64][]domain.Message
	nextID int64
	clock  *fakeClock
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) tick() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

func newFakes() (*fakeChatStore, *fakeMessageStore) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	messages := &fakeMessageStore{byChat: map[int64][]domain.Message{}, clock: clock}
	chats := &fakeChatStore{chats: map[int64]*domain.Chat{}, clock: clock, messages: messages}
	return chats, messages
}

func (s *fakeChatStore) Create(_ context.Context, title string) (*domain.Chat, error) {
	s.nextID++
	chat := &domain.Chat{ID: s.nextID, Title: title, CreatedAt: s.clock.tick()}
	s.chats[chat.ID] = chat
	return chat, nil
}

func (s *fakeChatStore) GetByID(_ context.Context, id int64) (*domain.Chat, error) {
	chat, ok := s.chats[id]
	if !ok {
		return nil, domain.ErrChatNotFound
	}
	copied := *chat
	return &copied, nil
}

func (s *fakeChatStore) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := s.chats[id]
	return ok, nil
}

func (s *fakeChatStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.chats[id]; !ok {
		return domain.ErrChatNotFound
	}
	delete(s.chats, id)
	delete(s.messages.byChat, id)
	return nil
}

func (s *fakeMessageStore) Create(_ context.Context, chatID int64, text string) (*domain.Message, error) {
	s.nextID++
	msg := domain.Message{ID: s.nextID, ChatID: chatID, Text: text, CreatedAt: s.clock.tick()}
	s.byChat[chatID] = append(s.byChat[chatID], msg)
	return &msg, nil
}

func (s *fakeMessageStore) ListRecent(_ context.Context, chatID int64, limit int) ([]domain.Message, error) {
	all := s.byChat[chatID]
	out := make([]domain.Message, 0, limit)
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, nil
}
