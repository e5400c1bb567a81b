package models

// RegisterRequest is the body of POST /users/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateTaskRequest is the body of POST /tasks/to-do.
// There is deliberately no owner field: ownership always comes from the
// authenticated identity, never from client input.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Completed   bool   `json:"completed"`
}
