package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/internal/service"
	"github.com/MKhiriev/go-task-tracker/models"
)

// ---- Test doubles ----

// mockAuthService реализует service.AuthService через подменяемые функции.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	authenticateFn func(ctx context.Context, tokenString string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	return m.authenticateFn(ctx, tokenString)
}

// mockTaskService реализует service.TaskService через подменяемые функции.
type mockTaskService struct {
	createTaskFn  func(ctx context.Context, owner models.User, req models.CreateTaskRequest) (models.Task, error)
	getTaskFn     func(ctx context.Context, owner models.User, taskID string) (models.Task, error)
	getAllTasksFn func(ctx context.Context, owner models.User) ([]models.Task, error)
	updateTaskFn  func(ctx context.Context, owner models.User, taskID string, fields map[string]json.RawMessage) (models.Task, error)
	deleteTaskFn  func(ctx context.Context, owner models.User, taskID string) (models.Task, error)
}

func (m *mockTaskService) CreateTask(ctx context.Context, owner models.User, req models.CreateTaskRequest) (models.Task, error) {
	return m.createTaskFn(ctx, owner, req)
}

func (m *mockTaskService) GetTask(ctx context.Context, owner models.User, taskID string) (models.Task, error) {
	return m.getTaskFn(ctx, owner, taskID)
}

func (m *mockTaskService) GetAllTasks(ctx context.Context, owner models.User) ([]models.Task, error) {
	return m.getAllTasksFn(ctx, owner)
}

func (m *mockTaskService) UpdateTask(ctx context.Context, owner models.User, taskID string, fields map[string]json.RawMessage) (models.Task, error) {
	return m.updateTaskFn(ctx, owner, taskID, fields)
}

func (m *mockTaskService) DeleteTask(ctx context.Context, owner models.User, taskID string) (models.Task, error) {
	return m.deleteTaskFn(ctx, owner, taskID)
}

// ---- Helpers ----

func newTestHandler(authSvc service.AuthService, taskSvc service.TaskService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: authSvc,
			TaskService: taskSvc,
		},
	}
}

// injectNopLogger кладёт nop-логгер в контекст запроса.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func decodeErrorBody(rr *httptest.ResponseRecorder) string {
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		return ""
	}
	return body["error"]
}
