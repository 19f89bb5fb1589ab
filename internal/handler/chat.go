package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/set-night/chatserv/internal/config"
	"github.com/set-night/chatserv/internal/domain"
)

type createChatRequest struct {
	Title string `json:"title"`
}

type chatDetailResponse struct {
	domain.Chat
	Messages []domain.Message `json:"messages"`
}

func (h *Handler) CreateChat(c echo.Context) error {
	var req createChatRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	chat, err := h.chatService.Create(c.Request().Context(), req.Title)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return validationFailed(c, verr)
		}
		return err
	}

	slog.Info("chat created", "chat_id", chat.ID, "title", chat.Title)
	return c.JSON(http.StatusCreated, chat)
}

func (h *Handler) GetChat(c echo.Context) error {
	id, ok := chatID(c)
	if !ok {
		return chatNotFound(c)
	}
	limit := parseLimit(c.QueryParam("limit"))

	chat, messages, err := h.chatService.Get(c.Request().Context(), id, limit)
	if err != nil {
		if errors.Is(err, domain.ErrChatNotFound) {
			slog.Warn("chat lookup for missing chat", "chat_id", id)
			return chatNotFound(c)
		}
		return err
	}

	if messages == nil {
		messages = []domain.Message{}
	}
	return c.JSON(http.StatusOK, chatDetailResponse{Chat: *chat, Messages: messages})
}

func (h *Handler) DeleteChat(c echo.Context) error {
	id, ok := chatID(c)
	if !ok {
		return chatNotFound(c)
	}

	if err := h.chatService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrChatNotFound) {
			slog.Warn("delete of missing chat", "chat_id", id)
			return chatNotFound(c)
		}
		return err
	}

	slog.Info("chat deleted", "chat_id", id)
	return c.NoContent(http.StatusNoContent)
}

// chatID parses the path id. A non-integer segment is indistinguishable
// from a missing chat as far as the client is concerned.
func chatID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// parseLimit applies the message window policy: absent or non-numeric
// values fall back to the default, values below 1 reset to the default,
// values above the cap are clamped down to it.
func parseLimit(raw string) int {
	if raw == "" {
		return config.DefaultMessageLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return config.DefaultMessageLimit
	}
	if n < 1 {
		return config.DefaultMessageLimit
	}
	if n > config.MaxMessageLimit {
		return config.MaxMessageLimit
	}
	return n
}
