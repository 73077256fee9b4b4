package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/tasklist-api/internal/api/shared"
)

// RegisterRoutes mounts the task endpoints on r. Unmatched paths and methods
// get the same JSON error body as every other failure.
func (h *TaskHandler) RegisterRoutes(r chi.Router) {
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, MsgNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
	})

	r.Get("/", h.Root)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/getAllTasks/{user_id}", h.ListTasks)
		r.Post("/addTask/{user_id}", h.CreateTask)
		r.Put("/updateTask/{user_id}/{task_id}", h.UpdateTask)
		r.Delete("/deleteTask/{user_id}/{task_id}", h.DeleteTask)
	})
}
