package store

import (
	"context"

	"github.com/MKhiriev/go-task-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository provides persistence for user identity records.
// Records are created at registration and read during login and token
// verification; no update or delete operation is exposed.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// TaskRepository provides persistence for task records.
//
// Every method that reads or mutates an existing task takes the owner's
// user ID and applies it in the query's WHERE clause: a task belonging to
// a different user is indistinguishable from an absent one
// ([ErrTaskNotFound] in both cases).
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	GetTask(ctx context.Context, taskID, userID string) (models.Task, error)
	GetAllTasks(ctx context.Context, userID string) ([]models.Task, error)
	UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, taskID, userID string) (models.Task, error)
}
