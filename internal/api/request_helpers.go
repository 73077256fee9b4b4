package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tasklist-api/internal/domain"
)

// Path parameter names used by the task routes.
const (
	ParamUserID = "user_id"
	ParamTaskID = "task_id"
)

// unmatchedTaskID stands in for integers too large for int. No stored task
// can carry it, since stored ids are always positive.
const unmatchedTaskID = 0

// getPathUserID returns the percent-decoded user_id path segment. chi matches
// on the escaped path, so "us%65r1" and "user1" must be unified here. Any
// decoded string is accepted, known user or not.
func getPathUserID(r *http.Request) (string, error) {
	raw := chi.URLParam(r, ParamUserID)
	userID, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", domain.ErrInvalidUserID, raw, err)
	}
	return userID, nil
}

// getPathTaskID parses the task_id path segment as a base-10 integer.
// Integers outside the int range are valid but match no task.
func getPathTaskID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, ParamTaskID)
	id, err := strconv.Atoi(raw)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return unmatchedTaskID, nil
		}
		return 0, fmt.Errorf("%w: task_id %q is not an integer", domain.ErrInvalidID, raw)
	}
	return id, nil
}
