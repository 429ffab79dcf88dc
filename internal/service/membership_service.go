package service

import (
	"context"

	"github.com/avagyan/gym-squads/internal/domain"
)

type MembershipService interface {
	AddMembership(ctx context.Context, userID, squadID int64) (*domain.Membership, error)
	RemoveMembership(ctx context.Context, userID, squadID int64) error
}
