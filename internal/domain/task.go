package domain

import (
	"fmt"
	"math"
)

// MaxSeedTaskID is the largest id a preloaded task may carry. It leaves
// room for NextTaskID to keep counting without overflowing int.
const MaxSeedTaskID = math.MaxInt / 2

// Task is a single to-do item owned by exactly one user.
type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// NewTask creates an incomplete Task with the given id and description.
// The description is kept verbatim, empty strings included.
func NewTask(id int, description string) (*Task, error) {
	t := &Task{
		ID:          id,
		Description: description,
		Completed:   false,
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("%w: task id must be positive, got %d: %w", ErrValidation, t.ID, ErrInvalidID)
	}
	return nil
}

// NextTaskID returns one more than the largest id in tasks, or 1 for an
// empty list. Ids freed by deleting the current maximum are handed out again.
func NextTaskID(tasks []Task) int {
	maxID := 0
	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}
