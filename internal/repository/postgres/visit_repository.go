package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avagyan/gym-squads/internal/domain"
)

type visitRepository struct {
	executor DBExecutor
}

func NewVisitRepository(db *sql.DB) *visitRepository {
	return &visitRepository{executor: db}
}

func (r *visitRepository) Create(ctx context.Context, visit *domain.Visit) error {
	query := `
		INSERT INTO visits (user_id, visit_date)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		visit.UserID,
		visit.VisitDate,
	).Scan(&visit.ID)

	if err != nil {
		if isForeignKeyViolation(err, constraintVisitsUserFK) {
			return domain.NewNotFoundError(fmt.Sprintf("user with id %d", visit.UserID))
		}
		return err
	}

	return nil
}

func (r *visitRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM visits
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *visitRepository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Visit, error) {
	query := `
		SELECT id, user_id, visit_date
		FROM visits
		WHERE user_id = $1
		ORDER BY visit_date DESC
	`

	rows, err := r.executor.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visits []*domain.Visit
	for rows.Next() {
		visit := &domain.Visit{}
		if err := rows.Scan(&visit.ID, &visit.UserID, &visit.VisitDate); err != nil {
			return nil, err
		}
		visits = append(visits, visit)
	}

	return visits, rows.Err()
}

func (r *visitRepository) GetBySquadID(ctx context.Context, squadID int64, from, to time.Time) ([]*domain.SquadVisit, error) {
	query := `
		SELECT v.visit_date, u.id, u.username
		FROM visits v
		JOIN users u ON v.user_id = u.id
		JOIN memberships m ON m.user_id = u.id
		WHERE m.squad_id = $1 AND v.visit_date >= $2 AND v.visit_date <= $3
		ORDER BY v.visit_date DESC
	`

	rows, err := r.executor.QueryContext(ctx, query, squadID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visits []*domain.SquadVisit
	for rows.Next() {
		visit := &domain.SquadVisit{}
		if err := rows.Scan(&visit.VisitDate, &visit.UserID, &visit.Username); err != nil {
			return nil, err
		}
		visits = append(visits, visit)
	}

	return visits, rows.Err()
}
