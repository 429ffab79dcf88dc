package repository

import (
	"context"
	"time"

	"github.com/avagyan/gym-squads/internal/domain"
)

type VisitRepository interface {
	Create(ctx context.Context, visit *domain.Visit) error
	Delete(ctx context.Context, id int64) error
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Visit, error)
	GetBySquadID(ctx context.Context, squadID int64, from, to time.Time) ([]*domain.SquadVisit, error)
}
