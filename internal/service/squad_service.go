package service

import (
	"context"

	"github.com/avagyan/gym-squads/internal/domain"
)

type SquadService interface {
	CreateSquad(ctx context.Context, name, description string) (*domain.Squad, error)
	ListSquads(ctx context.Context) ([]*domain.Squad, error)
	ListMembers(ctx context.Context, squadID int64) ([]*domain.User, error)
}
