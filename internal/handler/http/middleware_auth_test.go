package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-task-tracker/internal/service"
	"github.com/MKhiriev/go-task-tracker/internal/utils"
	"github.com/MKhiriev/go-task-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:      "non-Bearer scheme still parses second part",
			header:    "Basic dXNlcjpwYXNz",
			wantToken: "dXNlcjpwYXNz",
		},
		{
			name:    "scheme with trailing space only",
			header:  "Bearer ",
			wantErr: ErrEmptyToken,
		},
		{
			name:      "extra parts — second part is used",
			header:    "Bearer token extra-part",
			wantToken: "token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	authenticatedUser := models.User{UserID: "u-42", Email: "john@example.com"}

	tests := []struct {
		name           string
		authHeader     string
		authenticateFn func(ctx context.Context, s string) (models.User, error)
		expectedStatus int
		nextCalled     bool
		wantUserID     string
	}{
		{
			name:           "empty Authorization header → 401",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
		{
			name:           "invalid header format (no space) → 401",
			authHeader:     "BearerTokenWithoutSpace",
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
		{
			name:       "valid token → next called, user in context",
			authHeader: "Bearer valid-token",
			authenticateFn: func(_ context.Context, _ string) (models.User, error) {
				return authenticatedUser, nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
			wantUserID:     "u-42",
		},
		{
			name:       "expired or invalid token → 401",
			authHeader: "Bearer expired-token",
			authenticateFn: func(_ context.Context, _ string) (models.User, error) {
				return models.User{}, service.ErrTokenIsExpiredOrInvalid
			},
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
		{
			name:       "valid signature but deleted subject → 401",
			authHeader: "Bearer orphan-token",
			authenticateFn: func(_ context.Context, _ string) (models.User, error) {
				return models.User{}, service.ErrTokenIsExpiredOrInvalid
			},
			expectedStatus: http.StatusUnauthorized,
			nextCalled:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var authSvc service.AuthService
			if tt.authenticateFn != nil {
				authSvc = &mockAuthService{authenticateFn: tt.authenticateFn}
			} else {
				// Authenticate не должна вызваться — header пустой или невалидный
				authSvc = &mockAuthService{authenticateFn: func(_ context.Context, _ string) (models.User, error) {
					t.Fatal("Authenticate should not be called")
					return models.User{}, nil
				}}
			}

			h := newTestHandler(authSvc, nil)

			nextCalled := false
			var capturedUser models.User
			var capturedOK bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				capturedUser, capturedOK = utils.GetUserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)

			if tt.nextCalled {
				assert.True(t, capturedOK)
				assert.Equal(t, tt.wantUserID, capturedUser.UserID)
			}
		})
	}
}

// ---- Тело ответа при ошибках ----

func TestAuth_ErrorResponseBodies(t *testing.T) {
	h := newTestHandler(&mockAuthService{
		authenticateFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, service.ErrTokenIsExpiredOrInvalid
		},
	}, nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("empty header error body", func(t *testing.T) {
		rr := executeAuth(h, "", next)
		assert.Contains(t, rr.Body.String(), ErrEmptyAuthorizationHeader.Error())
	})

	t.Run("rejected token gives uniform body", func(t *testing.T) {
		rr := executeAuth(h, "Bearer rejected", next)
		assert.Equal(t, "Please authenticate", decodeErrorBody(rr))
	})
}

// ---- Токен кладётся в контекст вместе с identity ----

func TestAuth_TokenInContext(t *testing.T) {
	h := newTestHandler(&mockAuthService{
		authenticateFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{UserID: "u-1"}, nil
		},
	}, nil)

	var capturedToken string
	var capturedOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedToken, capturedOK = utils.GetTokenFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, "Bearer raw-token-string", next)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, capturedOK)
	assert.Equal(t, "raw-token-string", capturedToken)
}
