package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/platform/logger"
	"github.com/phrazzld/tasklist-api/internal/store"
)

// TaskService provides task list operations for a single user at a time.
type TaskService interface {
	// ListTasks returns the user's tasks in creation order.
	ListTasks(ctx context.Context, userID string) ([]domain.Task, error)

	// CreateTask adds a task to the user's list, creating the list if needed.
	CreateTask(ctx context.Context, userID string, description string) (*domain.Task, error)

	// UpdateTask replaces a task's description.
	UpdateTask(ctx context.Context, userID string, taskID int, description string) (*domain.Task, error)

	// DeleteTask removes a task from the user's list.
	DeleteTask(ctx context.Context, userID string, taskID int) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if the store is nil.
func NewTaskService(tasks store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if tasks == nil {
		return nil, fmt.Errorf("%w: task store", ErrNilDependency)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_service")),
	}, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("listing tasks", slog.String("user_id", userID))

	tasks, err := s.tasks.ListTasks(ctx, userID)
	if err != nil {
		return nil, s.translate(log, "list", userID, err)
	}

	log.Debug("tasks listed",
		slog.String("user_id", userID),
		slog.Int("count", len(tasks)))
	return tasks, nil
}

// CreateTask implements TaskService.CreateTask
func (s *taskServiceImpl) CreateTask(ctx context.Context, userID string, description string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.tasks.CreateTask(ctx, userID, description)
	if err != nil {
		return nil, s.translate(log, "create", userID, err)
	}

	log.Info("task created",
		slog.String("user_id", userID),
		slog.Int("task_id", task.ID))
	return task, nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	userID string,
	taskID int,
	description string,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := s.tasks.UpdateTask(ctx, userID, taskID, description)
	if err != nil {
		return nil, s.translate(log, "update", userID, err, slog.Int("task_id", taskID))
	}

	log.Info("task updated",
		slog.String("user_id", userID),
		slog.Int("task_id", taskID))
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, userID string, taskID int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.tasks.DeleteTask(ctx, userID, taskID); err != nil {
		return s.translate(log, "delete", userID, err, slog.Int("task_id", taskID))
	}

	log.Info("task deleted",
		slog.String("user_id", userID),
		slog.Int("task_id", taskID))
	return nil
}

// translate passes not-found sentinels through untouched and wraps anything
// else, logging at a level that matches how surprising the error is.
func (s *taskServiceImpl) translate(
	log *slog.Logger,
	operation string,
	userID string,
	err error,
	attrs ...any,
) error {
	args := append([]any{
		slog.String("operation", operation),
		slog.String("user_id", userID),
		slog.String("error", err.Error()),
	}, attrs...)

	if store.IsNotFoundError(err) {
		log.Debug("task operation target not found", args...)
		return err
	}

	log.Error("task operation failed", args...)
	return NewTaskServiceError(operation, "store error", err)
}
