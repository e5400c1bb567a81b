package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/service"
	"github.com/MKhiriev/go-task-tracker/internal/store"
	"github.com/MKhiriev/go-task-tracker/internal/utils"
	"github.com/MKhiriev/go-task-tracker/models"
)

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated identity in request context")
		utils.WriteJSONError(w, "Please authenticate", http.StatusUnauthorized)
		return
	}

	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.CreateTask(ctx, owner, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired):
			log.Err(err).Msg("task creation without title")
			utils.WriteJSONError(w, "Title is required", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidStatus):
			log.Err(err).Msg("invalid task status")
			utils.WriteJSONError(w, "invalid task status", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during task creation")
			utils.WriteJSONError(w, internalErrorMessage, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.TaskResponse{
		Task:    task,
		Message: "Task Created Successfully",
	}, http.StatusCreated)
}

func (h *Handler) getAllTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated identity in request context")
		utils.WriteJSONError(w, "Please authenticate", http.StatusUnauthorized)
		return
	}

	tasks, err := h.services.TaskService.GetAllTasks(ctx, owner)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during tasks fetching")
		utils.WriteJSONError(w, internalErrorMessage, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TaskListResponse{
		Tasks:   tasks,
		Message: "Tasks fetched successfully",
		Count:   len(tasks),
	}, http.StatusOK)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated identity in request context")
		utils.WriteJSONError(w, "Please authenticate", http.StatusUnauthorized)
		return
	}

	task, err := h.services.TaskService.GetTask(ctx, owner, chi.URLParam(r, "id"))
	if err != nil {
		writeTaskError(w, r, err, "unexpected error occurred during task fetching")
		return
	}

	utils.WriteJSON(w, models.TaskResponse{
		Task:    task,
		Message: "Task fetched successfully",
	}, http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated identity in request context")
		utils.WriteJSONError(w, "Please authenticate", http.StatusUnauthorized)
		return
	}

	// Decode into a raw field map so that the service can check every
	// client-supplied field name against the allow-list.
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.UpdateTask(ctx, owner, chi.URLParam(r, "id"), fields)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUpdateFields):
			log.Err(err).Msg("disallowed fields in update request")
			utils.WriteJSONError(w, "Invalid updates!", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrTitleRequired):
			log.Err(err).Msg("empty title in update request")
			utils.WriteJSONError(w, "Title is required", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidStatus):
			log.Err(err).Msg("invalid status in update request")
			utils.WriteJSONError(w, "invalid task status", http.StatusBadRequest)
			return
		default:
			writeTaskError(w, r, err, "unexpected error occurred during task update")
			return
		}
	}

	utils.WriteJSON(w, models.TaskResponse{
		Task:    task,
		Message: "Task updated successfully",
	}, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated identity in request context")
		utils.WriteJSONError(w, "Please authenticate", http.StatusUnauthorized)
		return
	}

	task, err := h.services.TaskService.DeleteTask(ctx, owner, chi.URLParam(r, "id"))
	if err != nil {
		writeTaskError(w, r, err, "unexpected error occurred during task deletion")
		return
	}

	utils.WriteJSON(w, models.TaskResponse{
		Task:    task,
		Message: "Task deleted successfully",
	}, http.StatusOK)
}

// writeTaskError maps common task-operation failures to HTTP responses.
//
// A task that does not exist and a task owned by another user produce the
// same 404 body, so the existence of foreign records is never revealed.
// Internal error detail is logged and replaced with a generic message.
func writeTaskError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		log.Err(err).Msg("task not found")
		utils.WriteJSONError(w, "Task not found", http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidDataProvided):
		log.Err(err).Msg("invalid data provided")
		utils.WriteJSONError(w, "Task ID is required", http.StatusBadRequest)
	default:
		log.Err(err).Msg(logMsg)
		utils.WriteJSONError(w, internalErrorMessage, http.StatusInternalServerError)
	}
}
