package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/models"
)

// taskRepository is the SQL-backed implementation of [TaskRepository].
// It executes all task CRUD operations directly against the "tasks" table
// using the embedded [*DB] connection.
//
// Every query carries the owner's user_id in its WHERE clause, so cross-user
// access is rejected at the database level and surfaces as [ErrTaskNotFound].
type taskRepository struct {
	*DB
	logger *logger.Logger
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateTask persists a new task and returns its canonical database
// representation (with server-assigned timestamps).
//
// The owner (task.UserID) must already be stamped by the service layer from
// the authenticated identity; the repository stores it verbatim.
func (t *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := t.DB.QueryRowContext(ctx, createTask,
		task.TaskID, task.Title, task.Description, task.Status, task.Completed, task.UserID)

	created, err := scanTask(row)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.CreateTask").
			Str("user_id", task.UserID).
			Msg("failed to insert task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// GetTask retrieves a single task scoped by owner.
//
// Returns [ErrTaskNotFound] when the task does not exist or belongs to a
// different user.
func (t *taskRepository) GetTask(ctx context.Context, taskID, userID string) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetTaskQuery(taskID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.GetTask").
			Str("user_id", userID).
			Msg("failed to create query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	task, err := scanTask(t.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).
			Str("func", "taskRepository.GetTask").
			Str("task_id", taskID).
			Str("user_id", userID).
			Msg("failed to query task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return task, nil
}

// GetAllTasks retrieves every task owned by the given user, oldest first.
//
// Returns an empty slice when the user has no tasks.
func (t *taskRepository) GetAllTasks(ctx context.Context, userID string) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllTasksQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.GetAllTasks").
			Str("user_id", userID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := t.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.GetAllTasks").
			Str("user_id", userID).
			Msg("failed to execute query for getting user tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, 16)

	for rows.Next() {
		var task models.Task

		scanErr := rows.Scan(
			&task.TaskID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.Completed,
			&task.UserID,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "taskRepository.GetAllTasks").
				Str("user_id", userID).
				Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		tasks = append(tasks, task)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "taskRepository.GetAllTasks").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tasks, nil
}

// UpdateTask applies the non-nil fields of update to a single task and
// returns the updated record.
//
// The generated UPDATE is scoped by task_id AND user_id; when it matches no
// row — absent task or foreign owner — [ErrTaskNotFound] is returned and
// nothing is modified.
func (t *taskRepository) UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTaskQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.UpdateTask").
			Str("task_id", update.TaskID).
			Msg("failed to build update query")
		return models.Task{}, err
	}

	task, err := scanTask(t.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).
			Str("func", "taskRepository.UpdateTask").
			Str("task_id", update.TaskID).
			Str("user_id", update.UserID).
			Msg("failed to execute update query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return task, nil
}

// DeleteTask removes a single task scoped by owner and returns the deleted
// record.
//
// Returns [ErrTaskNotFound] when the task does not exist or belongs to a
// different user.
func (t *taskRepository) DeleteTask(ctx context.Context, taskID, userID string) (models.Task, error) {
	log := logger.FromContext(ctx)

	task, err := scanTask(t.DB.QueryRowContext(ctx, deleteTask, taskID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).
			Str("func", "taskRepository.DeleteTask").
			Str("task_id", taskID).
			Str("user_id", userID).
			Msg("failed to execute delete query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return task, nil
}

// scanTask scans a single task row in [taskColumns] order.
func scanTask(row *sql.Row) (models.Task, error) {
	var task models.Task

	err := row.Scan(
		&task.TaskID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Completed,
		&task.UserID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return models.Task{}, err
	}

	return task, nil
}
