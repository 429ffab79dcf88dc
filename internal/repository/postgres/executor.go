package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// DBExecutor - общий интерфейс для *sql.DB и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Имена ограничений из migrations/000001_init.sql.
// Нарушение уникального ограничения - авторитетный сигнал конфликта:
// предварительные проверки в сервисах дают только дружелюбное сообщение,
// гонку двух одинаковых запросов разрешает БД.
const (
	constraintUsersUsername       = "users_username_key"
	constraintUsersEmail          = "users_email_key"
	constraintSquadsName          = "squads_squad_name_key"
	constraintMembershipsPair     = "memberships_user_id_squad_id_key"
	constraintMembershipsUserFK   = "memberships_user_id_fkey"
	constraintMembershipsSquadFK  = "memberships_squad_id_fkey"
	constraintVisitsUserFK        = "visits_user_id_fkey"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == constraint
	}
	return false
}

func isForeignKeyViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation && pgErr.ConstraintName == constraint
	}
	return false
}
