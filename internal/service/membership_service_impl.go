package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avagyan/gym-squads/internal/domain"
	"github.com/avagyan/gym-squads/internal/repository"
)

type membershipService struct {
	membershipRepo repository.MembershipRepository
	userRepo       repository.UserRepository
	squadRepo      repository.SquadRepository
}

// NewMembershipService создает новый экземпляр MembershipService
func NewMembershipService(
	membershipRepo repository.MembershipRepository,
	userRepo repository.UserRepository,
	squadRepo repository.SquadRepository,
) MembershipService {
	return &membershipService{
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		squadRepo:      squadRepo,
	}
}

// AddMembership добавляет пользователя в группу. Обе стороны связи проверяются
// заранее, дубликат пары окончательно отсекает уникальное ограничение БД
func (s *membershipService) AddMembership(ctx context.Context, userID, squadID int64) (*domain.Membership, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("user with id %d", userID))
		}
		return nil, err
	}
	if _, err := s.squadRepo.GetByID(ctx, squadID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("squad with id %d", squadID))
		}
		return nil, err
	}

	exists, err := s.membershipRepo.Exists(ctx, userID, squadID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyMember
	}

	membership := &domain.Membership{
		UserID:  userID,
		SquadID: squadID,
	}

	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		return nil, err
	}

	return membership, nil
}

// RemoveMembership удаляет членство; отсутствие пары - это NOT_FOUND, а не сбой
func (s *membershipService) RemoveMembership(ctx context.Context, userID, squadID int64) error {
	err := s.membershipRepo.Delete(ctx, userID, squadID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewNotFoundError(fmt.Sprintf("membership of user %d in squad %d", userID, squadID))
		}
		return err
	}

	return nil
}
