package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-task-tracker/internal/logger"
	"github.com/MKhiriev/go-task-tracker/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var userColumnsForTest = []string{"user_id", "name", "email", "password_hash", "created_at"}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, dialect: "pgx", logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		UserID:       "u-1",
		Name:         "John",
		Email:        "john@example.com",
		PasswordHash: "$2a$10$hash",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows(userColumnsForTest).
		AddRow(user.UserID, user.Name, user.Email, user.PasswordHash, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.UserID, user.Name, user.Email, user.PasswordHash).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != user.UserID {
		t.Errorf("expected UserID=%s, got %s", user.UserID, created.UserID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be populated from RETURNING clause")
	}
}

func TestCreateUser_UniqueViolation_Postgres(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{UserID: "u-1", Email: "john@example.com"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{UserID: "u-1", Email: "john@example.com"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, user)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{UserID: "u-1", Email: "john@example.com"}

	rows := sqlmock.
		NewRows([]string{"user_id"}). // intentionally wrong shape → scan error
		AddRow("u-1")

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(rows)

	_, err := repo.CreateUser(ctx, user)
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(userColumnsForTest).
		AddRow("u-1", "John", "john@example.com", "$2a$10$hash", now)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("john@example.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(ctx, "john@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != "u-1" {
		t.Errorf("expected UserID=u-1, got %s", found.UserID)
	}
	if found.PasswordHash != "$2a$10$hash" {
		t.Errorf("expected password hash to be scanned, got %q", found.PasswordHash)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(ctx, "missing@example.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByEmail_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("john@example.com").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindUserByEmail(ctx, "john@example.com")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(userColumnsForTest).
		AddRow("u-1", "John", "john@example.com", "$2a$10$hash", now)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("u-1").
		WillReturnRows(rows)

	found, err := repo.FindUserByID(ctx, "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email != "john@example.com" {
		t.Errorf("expected email john@example.com, got %s", found.Email)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("missing-id").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(ctx, "missing-id")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}
