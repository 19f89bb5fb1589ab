package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/set-night/chatserv/internal/service"
)

// Handler holds all dependencies needed by the HTTP endpoints.
type Handler struct {
	chatService    *service.ChatService
	messageService *service.MessageService
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	ChatService    *service.ChatService
	MessageService *service.MessageService
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		chatService:    deps.ChatService,
		messageService: deps.MessageService,
	}
}

// Register wires all routes. Wrong methods on these paths get echo's
// built-in 405.
func (h *Handler) Register(e *echo.Echo) {
	e.POST("/chats/", h.CreateChat)
	e.GET("/chats/:id/", h.GetChat)
	e.DELETE("/chats/:id/", h.DeleteChat)
	e.POST("/chats/:id/messages/", h.CreateMessage)
	e.GET("/health", h.Health)
}
