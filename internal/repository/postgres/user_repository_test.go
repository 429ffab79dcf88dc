package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avagyan/gym-squads/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "не удалось создать мок БД")
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// setupUserRepo создает мок БД и репозиторий для User
func setupUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewUserRepository(db), mock
}

// uniqueViolation имитирует нарушение уникального ограничения Postgres
func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraint}
}

// fkViolation имитирует нарушение внешнего ключа Postgres
func fkViolation(constraint string) error {
	return &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: constraint}
}

func TestUserRepository_Create(t *testing.T) {
	t.Run("успешное создание пользователя", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		now := time.Now()
		user := &domain.User{
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: "$2a$10$hash",
		}

		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(5, now, nil)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("alice", "alice@example.com", "$2a$10$hash", sqlmock.AnyArg()).
			WillReturnRows(rows)

		err := repo.Create(context.Background(), user)

		require.NoError(t, err)
		assert.Equal(t, int64(5), user.ID)
		assert.Nil(t, user.UpdatedAt, "updated_at должен быть nil при создании")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: занятый username превращается в USER_EXISTS", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		user := &domain.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}

		mock.ExpectQuery("INSERT INTO users").
			WithArgs("alice", "alice@example.com", "x", sqlmock.AnyArg()).
			WillReturnError(uniqueViolation(constraintUsersUsername))

		err := repo.Create(context.Background(), user)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUserExists))
		assert.Contains(t, err.Error(), "alice")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: занятый email превращается в USER_EXISTS", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		user := &domain.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}

		mock.ExpectQuery("INSERT INTO users").
			WithArgs("alice", "alice@example.com", "x", sqlmock.AnyArg()).
			WillReturnError(uniqueViolation(constraintUsersEmail))

		err := repo.Create(context.Background(), user)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUserExists))
		assert.Contains(t, err.Error(), "alice@example.com")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: сбой БД пробрасывается как есть", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		user := &domain.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}

		expectedError := errors.New("database error")
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("alice", "alice@example.com", "x", sqlmock.AnyArg()).
			WillReturnError(expectedError)

		err := repo.Create(context.Background(), user)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_Update(t *testing.T) {
	t.Run("успешное обновление пользователя", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		now := time.Now()
		user := &domain.User{
			ID:           1,
			Username:     "alice",
			Email:        "new@example.com",
			PasswordHash: "$2a$10$hash",
		}

		rows := sqlmock.NewRows([]string{"created_at", "updated_at"}).
			AddRow(now.Add(-24*time.Hour), now)
		mock.ExpectQuery("UPDATE users").
			WithArgs(int64(1), "alice", "new@example.com", "$2a$10$hash", sqlmock.AnyArg()).
			WillReturnRows(rows)

		err := repo.Update(context.Background(), user)

		require.NoError(t, err)
		assert.NotNil(t, user.UpdatedAt, "updated_at должен быть установлен при обновлении")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: пользователь не найден", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		user := &domain.User{ID: 999, Username: "ghost", Email: "g@example.com", PasswordHash: "x"}

		mock.ExpectQuery("UPDATE users").
			WithArgs(int64(999), "ghost", "g@example.com", "x", sqlmock.AnyArg()).
			WillReturnError(sql.ErrNoRows)

		err := repo.Update(context.Background(), user)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: новый username уже занят", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		user := &domain.User{ID: 1, Username: "taken", Email: "a@example.com", PasswordHash: "x"}

		mock.ExpectQuery("UPDATE users").
			WithArgs(int64(1), "taken", "a@example.com", "x", sqlmock.AnyArg()).
			WillReturnError(uniqueViolation(constraintUsersUsername))

		err := repo.Update(context.Background(), user)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUserExists))

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	t.Run("успешное получение пользователя", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		createdAt := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
		updatedAt := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at", "updated_at"}).
			AddRow(1, "alice", "alice@example.com", "$2a$10$hash", createdAt, updatedAt)
		mock.ExpectQuery("SELECT id, username, email, password_hash, created_at, updated_at").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		user, err := repo.GetByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.NotNil(t, user.UpdatedAt)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("успешное получение пользователя без updated_at", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		createdAt := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at", "updated_at"}).
			AddRow(1, "alice", "alice@example.com", "$2a$10$hash", createdAt, nil)
		mock.ExpectQuery("SELECT id, username, email, password_hash, created_at, updated_at").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		user, err := repo.GetByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Nil(t, user.UpdatedAt, "updated_at должен быть nil, если не установлен")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: пользователь не найден", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		mock.ExpectQuery("SELECT id, username, email, password_hash, created_at, updated_at").
			WithArgs(int64(999)).
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByID(context.Background(), 999)

		require.Error(t, err)
		assert.Nil(t, user)
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetByUsername(t *testing.T) {
	t.Run("успешное получение по username", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		createdAt := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at", "updated_at"}).
			AddRow(1, "alice", "alice@example.com", "$2a$10$hash", createdAt, nil)
		mock.ExpectQuery("SELECT id, username, email, password_hash, created_at, updated_at").
			WithArgs("alice").
			WillReturnRows(rows)

		user, err := repo.GetByUsername(context.Background(), "alice")

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка: пользователь не найден", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		mock.ExpectQuery("SELECT id, username, email, password_hash, created_at, updated_at").
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByUsername(context.Background(), "ghost")

		require.Error(t, err)
		assert.Nil(t, user)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestUserRepository_GetBySquadID(t *testing.T) {
	t.Run("успешное получение участников группы", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		createdAt := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

		rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at", "updated_at"}).
			AddRow(1, "alice", "alice@example.com", "x", createdAt, nil).
			AddRow(2, "bob", "bob@example.com", "x", createdAt, nil)
		mock.ExpectQuery("SELECT u.id, u.username, u.email, u.password_hash, u.created_at, u.updated_at").
			WithArgs(int64(3)).
			WillReturnRows(rows)

		users, err := repo.GetBySquadID(context.Background(), 3)

		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "alice", users[0].Username)
		assert.Equal(t, "bob", users[1].Username)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("успешное получение пустого списка", func(t *testing.T) {
		repo, mock := setupUserRepo(t)

		rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at", "updated_at"})
		mock.ExpectQuery("SELECT u.id, u.username, u.email, u.password_hash, u.created_at, u.updated_at").
			WithArgs(int64(3)).
			WillReturnRows(rows)

		users, err := repo.GetBySquadID(context.Background(), 3)

		require.NoError(t, err)
		// При отсутствии результатов возвращается nil слайс
		assert.Nil(t, users)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
