package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/platform/logger"
	"github.com/phrazzld/tasklist-api/internal/store"
)

// TaskStore implements store.TaskStore over a map of per-user task slices.
// A single RWMutex guards the whole map; every operation completes under it.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  map[string][]domain.Task
	logger *slog.Logger
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty in-memory task store.
// If logger is nil, a default logger will be used.
func NewTaskStore(logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		tasks:  make(map[string][]domain.Task),
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// ListTasks implements store.TaskStore.ListTasks
func (s *TaskStore) ListTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.RLock()
	defer s.mu.RUnlock()

	list, ok := s.tasks[userID]
	if !ok {
		log.Debug("task list not found", slog.String("user_id", userID))
		return nil, store.ErrUserNotFound
	}

	out := make([]domain.Task, len(list))
	copy(out, list)
	return out, nil
}

// CreateTask implements store.TaskStore.CreateTask
func (s *TaskStore) CreateTask(ctx context.Context, userID string, description string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.tasks[userID]
	if list == nil {
		log.Debug("initializing task list for new user", slog.String("user_id", userID))
	}

	task, err := domain.NewTask(domain.NextTaskID(list), description)
	if err != nil {
		// Unreachable with max+1 ids; surfaced rather than swallowed.
		return nil, store.NewStoreError("task", "create", "invalid task", err)
	}

	s.tasks[userID] = append(list, *task)

	log.Debug("task created",
		slog.String("user_id", userID),
		slog.Int("task_id", task.ID))
	return task, nil
}

// UpdateTask implements store.TaskStore.UpdateTask
func (s *TaskStore) UpdateTask(
	ctx context.Context,
	userID string,
	taskID int,
	description string,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.tasks[userID]
	if !ok {
		return nil, store.ErrUserNotFound
	}

	for i := range list {
		if list[i].ID != taskID {
			continue
		}
		list[i].Description = description
		updated := list[i]

		log.Debug("task updated",
			slog.String("user_id", userID),
			slog.Int("task_id", taskID))
		return &updated, nil
	}

	return nil, store.ErrTaskNotFound
}

// DeleteTask implements store.TaskStore.DeleteTask
func (s *TaskStore) DeleteTask(ctx context.Context, userID string, taskID int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	list, ok := s.tasks[userID]
	if !ok {
		return store.ErrUserNotFound
	}

	kept := make([]domain.Task, 0, len(list))
	for _, t := range list {
		if t.ID != taskID {
			kept = append(kept, t)
		}
	}
	s.tasks[userID] = kept

	log.Debug("task delete applied",
		slog.String("user_id", userID),
		slog.Int("task_id", taskID),
		slog.Int("removed", len(list)-len(kept)))
	return nil
}

// replaceUser installs a copy of tasks as the user's list, overwriting any
// existing one. Used for seeding.
func (s *TaskStore) replaceUser(userID string, tasks []domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]domain.Task, len(tasks))
	copy(list, tasks)
	s.tasks[userID] = list
}
