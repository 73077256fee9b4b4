package store

import (
	"context"

	"github.com/phrazzld/tasklist-api/internal/domain"
)

// TaskStore defines the interface for per-user task list persistence.
//
// A user's list comes into existence on its first CreateTask. Every other
// operation on an unknown user returns ErrUserNotFound.
type TaskStore interface {
	// ListTasks returns the user's tasks in creation order.
	// The returned slice is a copy; modifying it does not affect the store.
	// Returns ErrUserNotFound if the user has no list.
	ListTasks(ctx context.Context, userID string) ([]domain.Task, error)

	// CreateTask appends a new incomplete task to the user's list, creating
	// the list if needed. The id is one more than the largest id currently
	// in that user's list, or 1 if the list is empty.
	CreateTask(ctx context.Context, userID string, description string) (*domain.Task, error)

	// UpdateTask replaces the description of the matching task, leaving its
	// id and completion flag untouched.
	// Returns ErrUserNotFound or ErrTaskNotFound.
	UpdateTask(ctx context.Context, userID string, taskID int, description string) (*domain.Task, error)

	// DeleteTask removes every task with the given id from the user's list.
	// A missing task is not an error.
	// Returns ErrUserNotFound if the user has no list.
	DeleteTask(ctx context.Context, userID string, taskID int) error
}
