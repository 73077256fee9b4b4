package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/tasklist-api/internal/api/shared"
	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/store"
)

// Client-facing messages.
const (
	MsgUserNotFound     = "User not found"
	MsgTaskNotFound     = "Task not found"
	MsgTaskDeleted      = "Task deleted"
	MsgInvalidTaskID    = "Invalid task_id"
	MsgInvalidUserID    = "Invalid user_id"
	MsgInvalidRequest   = "Invalid request format"
	MsgUnexpected       = "An unexpected error occurred"
	MsgNotFound         = "Not Found"
	MsgMethodNotAllowed = "Method Not Allowed"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrTaskNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusUnprocessableEntity

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return MsgUnexpected
	case errors.Is(err, store.ErrUserNotFound):
		return MsgUserNotFound
	case errors.Is(err, store.ErrTaskNotFound):
		return MsgTaskNotFound
	case errors.Is(err, domain.ErrInvalidUserID):
		return MsgInvalidUserID
	case errors.Is(err, domain.ErrInvalidID):
		return MsgInvalidTaskID
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return MsgInvalidRequest
	default:
		return MsgUnexpected
	}
}

// HandleAPIError writes the status and safe message for err, logging the
// full (redacted) error. A non-empty fallback replaces the message of
// unclassified errors.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError turns validator output into a short message that
// names the field and the failed rule without echoing submitted values.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation error"
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	return "Invalid " + field + ": " + getValidationTagMessage(fe.Tag())
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	default:
		return "validation failed"
	}
}
