package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-task-tracker/models"
)

func TestBuildGetTaskQuery_ScopedByOwner(t *testing.T) {
	query, args, err := buildGetTaskQuery("t-1", "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "task_id = $1") {
		t.Errorf("expected task_id placeholder in query: %s", query)
	}
	if !strings.Contains(query, "user_id = $2") {
		t.Errorf("expected user_id placeholder in query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}
	if args[0] != "t-1" || args[1] != "u-1" {
		t.Errorf("unexpected args order: %v", args)
	}
}

func TestBuildGetAllTasksQuery(t *testing.T) {
	query, args, err := buildGetAllTasksQuery("u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "user_id = $1") {
		t.Errorf("expected user_id placeholder in query: %s", query)
	}
	if !strings.Contains(query, "ORDER BY created_at ASC") {
		t.Errorf("expected stable ordering in query: %s", query)
	}
	if len(args) != 1 || args[0] != "u-1" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildUpdateTaskQuery_AllFields(t *testing.T) {
	title := "New title"
	description := "New description"
	status := models.StatusDone

	query, args, err := buildUpdateTaskQuery(models.TaskUpdate{
		TaskID:      "t-1",
		UserID:      "u-1",
		Title:       &title,
		Description: &description,
		Status:      &status,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, fragment := range []string{
		"UPDATE tasks",
		"updated_at = CURRENT_TIMESTAMP",
		"title = ",
		"description = ",
		"status = ",
		"task_id = ",
		"user_id = ",
		"RETURNING",
	} {
		if !strings.Contains(query, fragment) {
			t.Errorf("expected %q in query: %s", fragment, query)
		}
	}

	// title, description, status + task_id, user_id
	if len(args) != 5 {
		t.Fatalf("expected 5 args, got %d: %v", len(args), args)
	}
}

func TestBuildUpdateTaskQuery_SingleField(t *testing.T) {
	status := models.StatusInProgress

	query, args, err := buildUpdateTaskQuery(models.TaskUpdate{
		TaskID: "t-1",
		UserID: "u-1",
		Status: &status,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(query, "title") {
		t.Errorf("title must not appear in single-field update: %s", query)
	}
	if !strings.Contains(query, "user_id = ") {
		t.Errorf("owner scoping missing from query: %s", query)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d: %v", len(args), args)
	}
}

func TestBuildUpdateTaskQuery_NoFields(t *testing.T) {
	_, _, err := buildUpdateTaskQuery(models.TaskUpdate{TaskID: "t-1", UserID: "u-1"})
	if !errors.Is(err, ErrBuildingSQLQuery) {
		t.Fatalf("expected ErrBuildingSQLQuery, got %v", err)
	}
}
