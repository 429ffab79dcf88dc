package repository

import (
	"context"

	"github.com/avagyan/gym-squads/internal/domain"
)

type SquadRepository interface {
	Create(ctx context.Context, squad *domain.Squad) error
	GetByID(ctx context.Context, id int64) (*domain.Squad, error)
	GetByName(ctx context.Context, name string) (*domain.Squad, error)
	GetAll(ctx context.Context) ([]*domain.Squad, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Squad, error)
}
