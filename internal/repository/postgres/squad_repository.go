package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/avagyan/gym-squads/internal/domain"
)

type squadRepository struct {
	executor DBExecutor
}

func NewSquadRepository(db *sql.DB) *squadRepository {
	return &squadRepository{executor: db}
}

func (r *squadRepository) Create(ctx context.Context, squad *domain.Squad) error {
	query := `
		INSERT INTO squads (squad_name, squad_description, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	var description sql.NullString
	if squad.Description != "" {
		description = sql.NullString{String: squad.Description, Valid: true}
	}

	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(
		ctx,
		query,
		squad.Name,
		description,
		time.Now(),
	).Scan(&squad.ID, &squad.CreatedAt, &updatedAt)

	if err != nil {
		if isUniqueViolation(err, constraintSquadsName) {
			return domain.NewSquadExistsError(squad.Name)
		}
		return err
	}

	if updatedAt.Valid {
		squad.UpdatedAt = &updatedAt.Time
	} else {
		squad.UpdatedAt = nil
	}

	return nil
}

func (r *squadRepository) GetByID(ctx context.Context, id int64) (*domain.Squad, error) {
	query := `
		SELECT id, squad_name, squad_description, created_at, updated_at
		FROM squads
		WHERE id = $1
	`

	return r.scanSquad(r.executor.QueryRowContext(ctx, query, id))
}

func (r *squadRepository) GetByName(ctx context.Context, name string) (*domain.Squad, error) {
	query := `
		SELECT id, squad_name, squad_description, created_at, updated_at
		FROM squads
		WHERE squad_name = $1
	`

	return r.scanSquad(r.executor.QueryRowContext(ctx, query, name))
}

func (r *squadRepository) GetAll(ctx context.Context) ([]*domain.Squad, error) {
	query := `
		SELECT id, squad_name, squad_description, created_at, updated_at
		FROM squads
		ORDER BY created_at
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanSquads(rows)
}

func (r *squadRepository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Squad, error) {
	query := `
		SELECT s.id, s.squad_name, s.squad_description, s.created_at, s.updated_at
		FROM squads s
		JOIN memberships m ON s.id = m.squad_id
		WHERE m.user_id = $1
		ORDER BY s.created_at
	`

	rows, err := r.executor.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanSquads(rows)
}

func (r *squadRepository) scanSquad(row *sql.Row) (*domain.Squad, error) {
	squad := &domain.Squad{}
	var description sql.NullString
	var updatedAt sql.NullTime
	err := row.Scan(
		&squad.ID,
		&squad.Name,
		&description,
		&squad.CreatedAt,
		&updatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	squad.Description = description.String
	if updatedAt.Valid {
		squad.UpdatedAt = &updatedAt.Time
	} else {
		squad.UpdatedAt = nil
	}

	return squad, nil
}

func (r *squadRepository) scanSquads(rows *sql.Rows) ([]*domain.Squad, error) {
	var squads []*domain.Squad
	for rows.Next() {
		squad := &domain.Squad{}
		var description sql.NullString
		var updatedAt sql.NullTime
		err := rows.Scan(
			&squad.ID,
			&squad.Name,
			&description,
			&squad.CreatedAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}
		squad.Description = description.String
		if updatedAt.Valid {
			squad.UpdatedAt = &updatedAt.Time
		} else {
			squad.UpdatedAt = nil
		}
		squads = append(squads, squad)
	}

	return squads, rows.Err()
}
