package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avagyan/gym-squads/internal/domain"
	"github.com/avagyan/gym-squads/internal/repository"
)

type squadService struct {
	squadRepo repository.SquadRepository
	userRepo  repository.UserRepository
}

// NewSquadService создает новый экземпляр SquadService
func NewSquadService(squadRepo repository.SquadRepository, userRepo repository.UserRepository) SquadService {
	return &squadService{
		squadRepo: squadRepo,
		userRepo:  userRepo,
	}
}

// CreateSquad создает группу с уникальным именем
func (s *squadService) CreateSquad(ctx context.Context, name, description string) (*domain.Squad, error) {
	if name == "" {
		return nil, domain.NewMissingFieldError("squad_name")
	}

	if _, err := s.squadRepo.GetByName(ctx, name); err == nil {
		return nil, domain.NewSquadExistsError(name)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	squad := &domain.Squad{
		Name:        name,
		Description: description,
	}

	if err := s.squadRepo.Create(ctx, squad); err != nil {
		return nil, err
	}

	return squad, nil
}

func (s *squadService) ListSquads(ctx context.Context) ([]*domain.Squad, error) {
	return s.squadRepo.GetAll(ctx)
}

// ListMembers возвращает всех пользователей, состоящих в группе
func (s *squadService) ListMembers(ctx context.Context, squadID int64) ([]*domain.User, error) {
	if _, err := s.squadRepo.GetByID(ctx, squadID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("squad with id %d", squadID))
		}
		return nil, err
	}

	return s.userRepo.GetBySquadID(ctx, squadID)
}
