package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{status: StatusToDo, want: true},
		{status: StatusInProgress, want: true},
		{status: StatusDone, want: true},
		{status: "", want: false},
		{status: "to do", want: false}, // регистр имеет значение
		{status: "Archived", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidStatus(tt.status))
		})
	}
}

func TestTask_JSONFieldNames(t *testing.T) {
	task := Task{
		TaskID: "t-1",
		Title:  "Buy milk",
		Status: StatusToDo,
		UserID: "u-1",
	}

	data, err := json.Marshal(task)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Contains(t, raw, "_id")
	assert.Contains(t, raw, "owner")
	assert.NotContains(t, raw, "user_id")
	assert.NotContains(t, raw, "description", "empty description must be omitted")
}

func TestUser_PasswordHashNeverSerialized(t *testing.T) {
	user := User{
		UserID:       "u-1",
		Name:         "John",
		Email:        "john@example.com",
		PasswordHash: "$2a$10$secret-hash",
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "secret-hash")
	assert.Contains(t, string(data), `"_id":"u-1"`)
}
