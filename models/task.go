package models

import "time"

// Task statuses. Any status may be set to any other via an allowed update;
// no monotonic transition order is enforced.
const (
	StatusToDo       = "To Do"
	StatusInProgress = "In Progress"
	StatusDone       = "Done"
)

// Task represents a single work item owned by exactly one user.
// The owner is stamped from the authenticated identity at creation time
// and is never changed by an update.
type Task struct {
	// TaskID is the unique identifier of the task, generated at creation.
	TaskID string `json:"_id"`

	// Title is the short human-readable name of the task. Required.
	Title string `json:"title"`

	// Description is an optional free-form elaboration of the task.
	Description string `json:"description,omitempty"`

	// Status is one of StatusToDo, StatusInProgress, StatusDone.
	Status string `json:"status"`

	// Completed is a legacy boolean flag kept alongside Status.
	// The two are not synchronized with each other.
	Completed bool `json:"completed"`

	// UserID references the owning user. Immutable after creation and
	// never taken from client input.
	UserID string `json:"owner"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// ValidStatus reports whether s is one of the allowed task statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// TaskUpdate describes a partial update of a task. Nil fields are left
// untouched. Only fields present here may ever be changed by a client:
// ownership and timestamps are managed by the server.
type TaskUpdate struct {
	TaskID      string
	UserID      string
	Title       *string
	Description *string
	Status      *string
}
