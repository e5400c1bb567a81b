package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/store"
	"github.com/MKhiriev/go-task-tracker/internal/utils"
	"github.com/MKhiriev/go-task-tracker/models"
)

// allowedUpdateFields is the static allow-list of task fields a client may
// change via PATCH. Everything else — ownership, the completed flag,
// timestamps, identifiers — is server-managed.
var allowedUpdateFields = map[string]struct{}{
	"title":       {},
	"description": {},
	"status":      {},
}

// taskService is the concrete implementation of TaskService.
//
// Ownership scoping is enforced in one place: every repository call below
// passes owner.UserID, taken from the authenticated identity the handler
// extracted from the request context. Client-supplied owner values never
// reach this layer.
type taskService struct {
	taskRepository store.TaskRepository
	ids            *utils.UUIDGenerator
	logger         *logger.Logger
}

// NewTaskService constructs a TaskService backed by the given TaskRepository.
func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// CreateTask validates the request and persists a new task owned by owner.
//
// The owner is stamped from the authenticated identity regardless of any
// client-supplied value (the request DTO carries no owner field at all).
// An empty status defaults to "To Do"; a status outside the enumeration is
// rejected with ErrInvalidStatus.
func (s *taskService) CreateTask(ctx context.Context, owner models.User, req models.CreateTaskRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	if req.Title == "" {
		log.Error().Str("user_id", owner.UserID).Msg("task creation without title")
		return models.Task{}, ErrTitleRequired
	}

	status := req.Status
	if status == "" {
		status = models.StatusToDo
	}
	if !models.ValidStatus(status) {
		log.Error().Str("status", status).Msg("invalid task status provided")
		return models.Task{}, ErrInvalidStatus
	}

	task := models.Task{
		TaskID:      s.ids.Generate(),
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Completed:   req.Completed,
		UserID:      owner.UserID,
	}

	createdTask, err := s.taskRepository.CreateTask(ctx, task)
	if err != nil {
		log.Err(err).Str("user_id", owner.UserID).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return createdTask, nil
}

// GetTask returns a single task of the owner.
// A foreign or absent task surfaces as store.ErrTaskNotFound.
func (s *taskService) GetTask(ctx context.Context, owner models.User, taskID string) (models.Task, error) {
	if taskID == "" {
		return models.Task{}, ErrInvalidDataProvided
	}

	return s.taskRepository.GetTask(ctx, taskID, owner.UserID)
}

// GetAllTasks returns every task of the owner, oldest first.
func (s *taskService) GetAllTasks(ctx context.Context, owner models.User) ([]models.Task, error) {
	return s.taskRepository.GetAllTasks(ctx, owner.UserID)
}

// UpdateTask applies a partial update after checking the raw field names
// against the allow-list.
//
// The check runs before any unmarshaling or persistence: one disallowed
// field rejects the whole request with ErrInvalidUpdateFields, so a body
// like {"title": "x", "owner": "other"} changes nothing.
func (s *taskService) UpdateTask(ctx context.Context, owner models.User, taskID string, fields map[string]json.RawMessage) (models.Task, error) {
	log := logger.FromContext(ctx)

	if taskID == "" {
		return models.Task{}, ErrInvalidDataProvided
	}

	if len(fields) == 0 {
		log.Error().Str("task_id", taskID).Msg("empty update request")
		return models.Task{}, ErrInvalidUpdateFields
	}

	for field := range fields {
		if _, ok := allowedUpdateFields[field]; !ok {
			log.Error().
				Str("task_id", taskID).
				Str("field", field).
				Msg("disallowed field in update request")
			return models.Task{}, ErrInvalidUpdateFields
		}
	}

	update := models.TaskUpdate{
		TaskID: taskID,
		UserID: owner.UserID,
	}

	if raw, ok := fields["title"]; ok {
		var title string
		if err := json.Unmarshal(raw, &title); err != nil || title == "" {
			return models.Task{}, ErrTitleRequired
		}
		update.Title = &title
	}

	if raw, ok := fields["description"]; ok {
		var description string
		if err := json.Unmarshal(raw, &description); err != nil {
			return models.Task{}, ErrInvalidDataProvided
		}
		update.Description = &description
	}

	if raw, ok := fields["status"]; ok {
		var status string
		if err := json.Unmarshal(raw, &status); err != nil || !models.ValidStatus(status) {
			return models.Task{}, ErrInvalidStatus
		}
		update.Status = &status
	}

	updatedTask, err := s.taskRepository.UpdateTask(ctx, update)
	if err != nil {
		return models.Task{}, err
	}

	return updatedTask, nil
}

// DeleteTask removes a single task of the owner and returns the deleted
// record. A foreign or absent task surfaces as store.ErrTaskNotFound.
func (s *taskService) DeleteTask(ctx context.Context, owner models.User, taskID string) (models.Task, error) {
	if taskID == "" {
		return models.Task{}, ErrInvalidDataProvided
	}

	return s.taskRepository.DeleteTask(ctx, taskID, owner.UserID)
}
