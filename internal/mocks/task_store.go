package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/tasklist-api/internal/domain"
)

// MockTaskStore implements store.TaskStore for testing.
// It records the user ids it was called with.
type MockTaskStore struct {
	ListTasksFn  func(ctx context.Context, userID string) ([]domain.Task, error)
	CreateTaskFn func(ctx context.Context, userID string, description string) (*domain.Task, error)
	UpdateTaskFn func(ctx context.Context, userID string, taskID int, description string) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, userID string, taskID int) error

	// Default return values
	Tasks        []domain.Task
	Task         *domain.Task
	DefaultError error

	mu    sync.Mutex
	calls []string
}

func (m *MockTaskStore) record(op, userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, op+":"+userID)
}

// Calls returns the recorded "operation:userID" pairs in call order.
func (m *MockTaskStore) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

// ListTasks implements the TaskStore.ListTasks method
func (m *MockTaskStore) ListTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	m.record("list", userID)
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx, userID)
	}
	return m.Tasks, m.DefaultError
}

// CreateTask implements the TaskStore.CreateTask method
func (m *MockTaskStore) CreateTask(ctx context.Context, userID string, description string) (*domain.Task, error) {
	m.record("create", userID)
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, userID, description)
	}
	return m.Task, m.DefaultError
}

// UpdateTask implements the TaskStore.UpdateTask method
func (m *MockTaskStore) UpdateTask(
	ctx context.Context,
	userID string,
	taskID int,
	description string,
) (*domain.Task, error) {
	m.record("update", userID)
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, userID, taskID, description)
	}
	return m.Task, m.DefaultError
}

// DeleteTask implements the TaskStore.DeleteTask method
func (m *MockTaskStore) DeleteTask(ctx context.Context, userID string, taskID int) error {
	m.record("delete", userID)
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, userID, taskID)
	}
	return m.DefaultError
}
