package store

import (
	"context"

	"github.com/MKhiriev/go-task-tracker/internal/config"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
)

// Storages aggregates all repositories so that the service layer receives a
// single dependency at construction time.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
}

// NewStorages connects to the database backend selected by cfg.DB.DSN,
// applies pending schema migrations, and constructs all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Msg("error running database migrations")
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		TaskRepository: NewTaskRepository(db, log),
	}, nil
}
