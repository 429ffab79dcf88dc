package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avagyan/gym-squads/internal/domain"
	"github.com/avagyan/gym-squads/internal/repository"
)

// dateLayout - формат дат в параметрах startDate/endDate
const dateLayout = "2006-01-02"

// defaultVisitWindow - окно по умолчанию для выборки посещений группы
const defaultVisitWindow = 14 * 24 * time.Hour

type visitService struct {
	visitRepo repository.VisitRepository
	userRepo  repository.UserRepository
	squadRepo repository.SquadRepository
}

// NewVisitService создает новый экземпляр VisitService
func NewVisitService(
	visitRepo repository.VisitRepository,
	userRepo repository.UserRepository,
	squadRepo repository.SquadRepository,
) VisitService {
	return &visitService{
		visitRepo: visitRepo,
		userRepo:  userRepo,
		squadRepo: squadRepo,
	}
}

// AddVisit записывает посещение; без даты берется текущее время
func (s *visitService) AddVisit(ctx context.Context, userID int64, visitDate *time.Time) (*domain.Visit, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("user with id %d", userID))
		}
		return nil, err
	}

	date := time.Now()
	if visitDate != nil {
		date = *visitDate
	}

	visit := &domain.Visit{
		UserID:    userID,
		VisitDate: date,
	}

	if err := s.visitRepo.Create(ctx, visit); err != nil {
		return nil, err
	}

	return visit, nil
}

func (s *visitService) DeleteVisit(ctx context.Context, visitID int64) error {
	err := s.visitRepo.Delete(ctx, visitID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewNotFoundError(fmt.Sprintf("visit with id %d", visitID))
		}
		return err
	}

	return nil
}

func (s *visitService) ListUserVisits(ctx context.Context, userID int64) ([]*domain.Visit, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("user with id %d", userID))
		}
		return nil, err
	}

	return s.visitRepo.GetByUserID(ctx, userID)
}

// ListSquadVisits возвращает посещения всех участников группы за период,
// по умолчанию - последние две недели. Посещения отсортированы по дате по убыванию.
func (s *visitService) ListSquadVisits(ctx context.Context, squadID int64, startDate, endDate string) ([]*domain.SquadVisit, error) {
	if _, err := s.squadRepo.GetByID(ctx, squadID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("squad with id %d", squadID))
		}
		return nil, err
	}

	from, to, err := visitWindow(startDate, endDate, time.Now())
	if err != nil {
		return nil, err
	}

	return s.visitRepo.GetBySquadID(ctx, squadID, from, to)
}

// visitWindow вычисляет границы периода. Указанный endDate включается целиком
func visitWindow(startDate, endDate string, now time.Time) (time.Time, time.Time, error) {
	from := now.Add(-defaultVisitWindow)
	to := now

	var start, end time.Time
	if startDate != "" {
		parsed, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return time.Time{}, time.Time{}, domain.NewInvalidRangeError("invalid start date: " + startDate)
		}
		start = parsed
		from = parsed
	}
	if endDate != "" {
		parsed, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return time.Time{}, time.Time{}, domain.NewInvalidRangeError("invalid end date: " + endDate)
		}
		end = parsed
		to = parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return time.Time{}, time.Time{}, domain.NewInvalidRangeError("start date is after end date")
	}

	return from, to, nil
}
