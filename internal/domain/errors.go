package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrChatNotFound = errors.New("chat not found")
)

// ValidationError reports that a single input field failed its
// trim/length constraints. Messages are suitable for the wire.
type ValidationError struct {
	Field    string
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, strings.Join(e.Messages, "; "))
}
