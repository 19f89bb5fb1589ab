package service

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/set-night/chatserv/internal/domain"
)

var validate = validator.New()

// validateField normalizes a raw user-supplied string and enforces the
// 1..max character bound on the trimmed value. The trimmed value is the
// one persisted and returned, never the raw input.
func validateField(field, raw string, max int) (string, error) {
	value := strings.TrimSpace(raw)
	if err := validate.Var(value, fmt.Sprintf("required,max=%d", max)); err != nil {
		return "", &domain.ValidationError{
			Field:    field,
			Messages: []string{fmt.Sprintf("%s must be between 1 and %d characters", field, max)},
		}
	}
	return value, nil
}
