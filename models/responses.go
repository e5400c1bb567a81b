package models

// AuthResponse is returned by registration and login. Token carries the
// compact JWS string; Message is present only on login.
type AuthResponse struct {
	Message string `json:"message,omitempty"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

// TaskResponse wraps a single task together with a human-readable message.
type TaskResponse struct {
	Task    Task   `json:"task"`
	Message string `json:"message"`
}

// TaskListResponse wraps the caller's task list.
//
// Count duplicates len(Tasks) so the client can validate the response
// without iterating the slice.
type TaskListResponse struct {
	Tasks   []Task `json:"tasks"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// ErrorResponse is the uniform JSON error body for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
