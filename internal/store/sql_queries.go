package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-task-tracker/models"
)

const (
	createUser = `INSERT INTO users (user_id, name, email, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	createTask = `INSERT INTO tasks (task_id, title, description, status, completed, user_id)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING task_id, title, description, status, completed, user_id, created_at, updated_at;`

	deleteTask = `DELETE FROM tasks
    WHERE task_id = $1 AND user_id = $2
    RETURNING task_id, title, description, status, completed, user_id, created_at, updated_at;`
)

// taskColumns is the canonical column order scanned into a models.Task.
var taskColumns = []string{
	"task_id",
	"title",
	"description",
	"status",
	"completed",
	"user_id",
	"created_at",
	"updated_at",
}

// psql builds all dynamic queries with dollar placeholders. Both supported
// drivers (pgx, go-sqlite3) accept the $N positional syntax.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildGetTaskQuery selects a single task, always scoped by owner.
func buildGetTaskQuery(taskID, userID string) (string, []any, error) {
	return psql.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"task_id": taskID, "user_id": userID}).
		ToSql()
}

// buildGetAllTasksQuery selects every task of the given owner, oldest first.
func buildGetAllTasksQuery(userID string) (string, []any, error) {
	return psql.
		Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
}

// buildUpdateTaskQuery builds a partial UPDATE from the non-nil fields of
// update. The WHERE clause always carries both task_id and user_id: a task
// owned by someone else matches zero rows, exactly like an absent one.
//
// Returns ErrBuildingSQLQuery when no field is set, so that an empty update
// never reaches the database.
func buildUpdateTaskQuery(update models.TaskUpdate) (string, []any, error) {
	builder := psql.
		Update("tasks").
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	columnsSet := 0
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
		columnsSet++
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
		columnsSet++
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
		columnsSet++
	}

	if columnsSet == 0 {
		return "", nil, fmt.Errorf("%w: no columns to update", ErrBuildingSQLQuery)
	}

	return builder.
		Where(sq.Eq{"task_id": update.TaskID, "user_id": update.UserID}).
		Suffix("RETURNING task_id, title, description, status, completed, user_id, created_at, updated_at").
		ToSql()
}
