package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/set-night/chatserv/internal/domain"
)

func chatNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, map[string]string{"detail": "Chat not found"})
}

func validationFailed(c echo.Context, verr *domain.ValidationError) error {
	return c.JSON(http.StatusBadRequest, map[string][]string{verr.Field: verr.Messages})
}

func invalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"detail": "invalid request body"})
}

// HTTPErrorHandler converts anything handlers did not map themselves.
// Echo's own errors (404 on unknown routes, 405) keep their code;
// everything else is an internal failure: logged, answered generically,
// never retried.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if he, ok := err.(*echo.HTTPError); ok {
		_ = c.JSON(he.Code, map[string]string{"detail": fmt.Sprintf("%v", he.Message)})
		return
	}

	slog.Error("unhandled request error",
		"error", err,
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
	)
	_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
