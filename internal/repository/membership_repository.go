package repository

import (
	"context"

	"github.com/avagyan/gym-squads/internal/domain"
)

type MembershipRepository interface {
	Create(ctx context.Context, membership *domain.Membership) error
	Delete(ctx context.Context, userID, squadID int64) error
	Exists(ctx context.Context, userID, squadID int64) (bool, error)
}
