package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/domain/entity"
	"notekeep/internal/repository"
)

var userColumns = []string{"id", "email", "name", "password_hash", "created_at"}

func newUserRepoWithMock(t *testing.T) (repository.UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	pool, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Close() })
	return NewUserRepo(pool), mock
}

func TestUserRepo_GetByEmail(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	now := time.Now().UTC()
	mock.ExpectQuery("FROM users\\s+WHERE email = \\$1").
		WithArgs("reader@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("u-1", "reader@example.com", "Reader", "$2a$12$hash", now))

	got, err := repo.GetByEmail(context.Background(), "reader@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, "Reader", got.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByEmail_NotFound(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery("FROM users\\s+WHERE email = \\$1").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	got, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByID(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	now := time.Now().UTC()
	mock.ExpectQuery("FROM users\\s+WHERE id = \\$1").
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("u-1", "reader@example.com", "Reader", "$2a$12$hash", now))

	got, err := repo.GetByID(context.Background(), "u-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "reader@example.com", got.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	now := time.Now().UTC()
	user := &entity.User{
		ID:           "u-1",
		Email:        "reader@example.com",
		Name:         "Reader",
		PasswordHash: "$2a$12$hash",
		CreatedAt:    now,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("u-1", "reader@example.com", "Reader", "$2a$12$hash", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), user)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(errors.New(`duplicate key value violates unique constraint "users_email_key"`))

	err := repo.Create(context.Background(), &entity.User{ID: "u-2", Email: "reader@example.com"})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
