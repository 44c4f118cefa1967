package rest

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/services"
	"github.com/go-chi/chi/v5"
)

type taskDTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	UserID      string    `json:"user_id"`
	DueDate     *string   `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTaskDTO(t *models.Task) taskDTO {
	return taskDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		UserID:      t.UserID,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type createTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	DueDate     *string `json:"due_date"`
	UserID      *string `json:"user_id"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	DueDate     *string `json:"due_date"`
}

type toggleTaskRequest struct {
	Completed *bool `json:"completed"`
}

type deleteTaskResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func taskIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "task_id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: task_id must be a positive integer", common.ErrValidation)
	}
	return id, nil
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	caller, _ := UserIDFromContext(r.Context())

	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	// a body-declared owner must match too; the stored owner is always the caller
	if req.UserID != nil {
		if err := h.guard.AssertOwner(caller, *req.UserID); err != nil {
			h.logger.Warn(r.Context(), "body owner mismatch", "caller", caller)
			h.writeError(w, r, err)
			return
		}
	}

	task, err := h.tasks.Create(r.Context(), caller, services.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTaskDTO(task))
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	caller, _ := UserIDFromContext(r.Context())

	list, err := h.tasks.List(r.Context(), caller)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	out := make([]taskDTO, 0, len(list))
	for _, t := range list {
		out = append(out, toTaskDTO(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	caller, _ := UserIDFromContext(r.Context())

	id, err := taskIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	task, err := h.tasks.Get(r.Context(), caller, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskDTO(task))
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	caller, _ := UserIDFromContext(r.Context())

	id, err := taskIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req updateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	task, err := h.tasks.Update(r.Context(), caller, id, services.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskDTO(task))
}

func (h *Handler) toggleTask(w http.ResponseWriter, r *http.Request) {
	caller, _ := UserIDFromContext(r.Context())

	id, err := taskIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req toggleTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.Completed == nil {
		h.writeError(w, r, fmt.Errorf("%w: completed is required", common.ErrValidation))
		return
	}

	task, err := h.tasks.Toggle(r.Context(), caller, id, *req.Completed)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskDTO(task))
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	caller, _ := UserIDFromContext(r.Context())

	id, err := taskIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	ok, err := h.tasks.Delete(r.Context(), caller, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteTaskResponse{Success: ok, Message: "Task deleted successfully"})
}
