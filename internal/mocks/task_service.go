package mocks

import (
	"context"

	"github.com/phrazzld/tasklist-api/internal/domain"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	ListTasksFn  func(ctx context.Context, userID string) ([]domain.Task, error)
	CreateTaskFn func(ctx context.Context, userID string, description string) (*domain.Task, error)
	UpdateTaskFn func(ctx context.Context, userID string, taskID int, description string) (*domain.Task, error)
	DeleteTaskFn func(ctx context.Context, userID string, taskID int) error

	// Default return values
	Tasks        []domain.Task
	Task         *domain.Task
	DefaultError error
}

// ListTasks implements the TaskService.ListTasks method
func (m *MockTaskService) ListTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx, userID)
	}
	return m.Tasks, m.DefaultError
}

// CreateTask implements the TaskService.CreateTask method
func (m *MockTaskService) CreateTask(ctx context.Context, userID string, description string) (*domain.Task, error) {
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, userID, description)
	}
	return m.Task, m.DefaultError
}

// UpdateTask implements the TaskService.UpdateTask method
func (m *MockTaskService) UpdateTask(
	ctx context.Context,
	userID string,
	taskID int,
	description string,
) (*domain.Task, error) {
	if m.UpdateTaskFn != nil {
		return m.UpdateTaskFn(ctx, userID, taskID, description)
	}
	return m.Task, m.DefaultError
}

// DeleteTask implements the TaskService.DeleteTask method
func (m *MockTaskService) DeleteTask(ctx context.Context, userID string, taskID int) error {
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, userID, taskID)
	}
	return m.DefaultError
}
