package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-task-tracker/models"
)

// AuthService handles user registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// Authenticate verifies a raw bearer token and resolves its subject to
	// a persisted identity. A valid signature whose subject no longer
	// exists is an authentication failure, not a success.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// TaskService implements all task operations, each scoped to the owning
// identity supplied by the caller (never by client input).
type TaskService interface {
	CreateTask(ctx context.Context, owner models.User, req models.CreateTaskRequest) (models.Task, error)
	GetTask(ctx context.Context, owner models.User, taskID string) (models.Task, error)
	GetAllTasks(ctx context.Context, owner models.User) ([]models.Task, error)

	// UpdateTask applies a partial update described by raw body fields.
	// Field names outside the static allow-list (title, description,
	// status) reject the whole update with ErrInvalidUpdateFields; no
	// partial application happens.
	UpdateTask(ctx context.Context, owner models.User, taskID string, fields map[string]json.RawMessage) (models.Task, error)
	DeleteTask(ctx context.Context, owner models.User, taskID string) (models.Task, error)
}
