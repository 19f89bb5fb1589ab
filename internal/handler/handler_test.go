package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/set-night/chatserv/internal/domain"
	"github.com/set-night/chatserv/internal/service"
)

// In-memory stores backing the HTTP tests. Insertion order doubles as
// created_at order, matching the repository's DESC query semantics.
type fakeChatStore struct {
	chats    map[int64]*domain.Chat
	nextID   int64
	now      time.Time
	messages *fakeMessageStore
}

type fakeMessageStore struct {
	byChat map[int64][]domain.Message
	nextID int64
	parent *fakeChatStore
}

func newFakes() (*fakeChatStore, *fakeMessageStore) {
	messages := &fakeMessageStore{byChat: map[int64][]domain.Message{}}
	chats := &fakeChatStore{
		chats:    map[int64]*domain.Chat{},
		now:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		messages: messages,
	}
	messages.parent = chats
	return chats, messages
}

func (s *fakeChatStore) tick() time.Time {
	s.now = s.now.Add(time.Second)
	return s.now
}

func (s *fakeChatStore) Create(_ context.Context, title string) (*domain.Chat, error) {
	s.nextID++
	chat := &domain.Chat{ID: s.nextID, Title: title, CreatedAt: s.tick()}
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
	msg := domain.Message{ID: s.nextID, ChatID: chatID, Text: text, CreatedAt: s.parent.tick()}
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

func newTestServer() (*echo.Echo, *fakeChatStore, *fakeMessageStore) {
	chats, messages := newFakes()
	h := New(Deps{
		ChatService:    service.NewChatService(chats, messages),
		MessageService: service.NewMessageService(chats, messages),
	})

	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler
	h.Register(e)
	return e, chats, messages
}

func performJSON(e *echo.Echo, method, path string, body any) *httptest.ResponseRecorder {
	var reqBody io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewReader(b)
	}
	return performRaw(e, method, path, reqBody)
}

func performRaw(e *echo.Echo, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(rec *httptest.ResponseRecorder) map[string]any {
	out := map[string]any{}
	_ = json.Unmarshal(rec.Body.Bytes(), &out)
	return out
}
