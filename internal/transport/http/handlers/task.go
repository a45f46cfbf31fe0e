package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskhub/task-service/internal/application/task"
	"github.com/taskhub/task-service/internal/logger"
	"github.com/taskhub/task-service/internal/transport/http/dto"
	"github.com/taskhub/task-service/internal/transport/http/middleware"
	"github.com/taskhub/task-service/internal/transport/http/response"
)

type TaskHandler struct {
	svc *task.Service
}

func NewTaskHandler(svc *task.Service) *TaskHandler {
	return &TaskHandler{svc: svc}
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.List(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewTaskViews(tasks))
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.NewTaskView(t))
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	actorID, _ := middleware.UserIDFromContext(r.Context())

	t, err := h.svc.Create(r.Context(), actorID, req.Text)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	log := logger.WithCtx(r.Context())
	log.Info().
		Str("task_id", t.ID).
		Str("actor_id", actorID).
		Msg("task_created")

	response.Created(w, dto.NewTaskView(t))
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTaskRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	t, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), req.Text, req.IsCompleted)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.NewTaskView(t))
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.UserIDFromContext(r.Context())

	if err := h.svc.Delete(r.Context(), actorID, chi.URLParam(r, "id")); err != nil {
		response.WriteError(w, r, err)
		return
	}

	log := logger.WithCtx(r.Context())
	log.Info().
		Str("actor_id", actorID).
		Msg("task_deleted")

	response.NoContent(w)
}
