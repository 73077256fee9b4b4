package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/tasklist-api/internal/api/shared"
	"github.com/phrazzld/tasklist-api/internal/platform/logger"
	"github.com/phrazzld/tasklist-api/internal/redact"
	"github.com/phrazzld/tasklist-api/internal/service"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if taskService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("taskService cannot be nil for TaskHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// Root handles GET / requests
func (h *TaskHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, RootResponse{Hello: "World"})
}

// ListTasks handles GET /api/v1/getAllTasks/{user_id} requests
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathUserID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	tasks, err := h.taskService.ListTasks(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// CreateTask handles POST /api/v1/addTask/{user_id} requests
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathUserID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	req, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), userID, *req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// UpdateTask handles PUT /api/v1/updateTask/{user_id}/{task_id} requests
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathUserID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	taskID, err := getPathTaskID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	req, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	task, err := h.taskService.UpdateTask(r.Context(), userID, taskID, *req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// DeleteTask handles DELETE /api/v1/deleteTask/{user_id}/{task_id} requests
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathUserID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	taskID, err := getPathTaskID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), userID, taskID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, shared.DetailResponse{Detail: MsgTaskDeleted})
}

// decodeTaskRequest parses and validates a create/update body, writing a 422
// response and returning false when it is unusable.
func (h *TaskHandler) decodeTaskRequest(w http.ResponseWriter, r *http.Request) (*TaskRequest, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity, MsgInvalidRequest, err)
		return nil, false
	}

	if err := shared.ValidateRequest(&req); err != nil {
		log.Warn("validation error", slog.String("error", redact.Error(err)))
		shared.RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity, SanitizeValidationError(err), err)
		return nil, false
	}

	return &req, true
}
