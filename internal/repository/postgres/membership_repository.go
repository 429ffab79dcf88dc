package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avagyan/gym-squads/internal/domain"
)

type membershipRepository struct {
	executor DBExecutor
}

func NewMembershipRepository(db *sql.DB) *membershipRepository {
	return &membershipRepository{executor: db}
}

func (r *membershipRepository) Create(ctx context.Context, membership *domain.Membership) error {
	query := `
		INSERT INTO memberships (user_id, squad_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(
		ctx,
		query,
		membership.UserID,
		membership.SquadID,
		time.Now(),
	).Scan(&membership.ID, &membership.CreatedAt, &updatedAt)

	if err != nil {
		if isUniqueViolation(err, constraintMembershipsPair) {
			return domain.ErrAlreadyMember
		}
		if isForeignKeyViolation(err, constraintMembershipsUserFK) {
			return domain.NewNotFoundError(fmt.Sprintf("user with id %d", membership.UserID))
		}
		if isForeignKeyViolation(err, constraintMembershipsSquadFK) {
			return domain.NewNotFoundError(fmt.Sprintf("squad with id %d", membership.SquadID))
		}
		return err
	}

	if updatedAt.Valid {
		membership.UpdatedAt = &updatedAt.Time
	} else {
		membership.UpdatedAt = nil
	}

	return nil
}

func (r *membershipRepository) Delete(ctx context.Context, userID, squadID int64) error {
	query := `
		DELETE FROM memberships
		WHERE user_id = $1 AND squad_id = $2
	`

	result, err := r.executor.ExecContext(ctx, query, userID, squadID)
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

func (r *membershipRepository) Exists(ctx context.Context, userID, squadID int64) (bool, error) {
	query := `
		SELECT COUNT(*) FROM memberships
		WHERE user_id = $1 AND squad_id = $2
	`

	var count int
	err := r.executor.QueryRowContext(ctx, query, userID, squadID).Scan(&count)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
