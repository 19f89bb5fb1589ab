package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/set-night/chatserv/internal/domain"
)

type createMessageRequest struct {
	Text string `json:"text"`
}

func (h *Handler) CreateMessage(c echo.Context) error {
	id, ok := chatID(c)
	if !ok {
		return chatNotFound(c)
	}

	var req createMessageRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	msg, err := h.messageService.Append(c.Request().Context(), id, req.Text)
	if err != nil {
		if errors.Is(err, domain.ErrChatNotFound) {
			slog.Warn("message append to missing chat", "chat_id", id)
			return chatNotFound(c)
		}
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return validationFailed(c, verr)
		}
		return err
	}

	slog.Info("message created", "message_id", msg.ID, "chat_id", id)
	return c.JSON(http.StatusCreated, msg)
}
