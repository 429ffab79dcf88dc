package service

import (
	"context"
	"time"

	"github.com/avagyan/gym-squads/internal/domain"
)

type VisitService interface {
	AddVisit(ctx context.Context, userID int64, visitDate *time.Time) (*domain.Visit, error)
	DeleteVisit(ctx context.Context, visitID int64) error
	ListUserVisits(ctx context.Context, userID int64) ([]*domain.Visit, error)
	ListSquadVisits(ctx context.Context, squadID int64, startDate, endDate string) ([]*domain.SquadVisit, error)
}
