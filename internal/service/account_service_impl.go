package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/avagyan/gym-squads/internal/domain"
	"github.com/avagyan/gym-squads/internal/repository"
)

type accountService struct {
	userRepo       repository.UserRepository
	squadRepo      repository.SquadRepository
	hasher         PasswordHasher
	tokens         TokenIssuer
	minPasswordLen int
}

// NewAccountService создает новый экземпляр AccountService
func NewAccountService(
	userRepo repository.UserRepository,
	squadRepo repository.SquadRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	minPasswordLen int,
) AccountService {
	return &accountService{
		userRepo:       userRepo,
		squadRepo:      squadRepo,
		hasher:         hasher,
		tokens:         tokens,
		minPasswordLen: minPasswordLen,
	}
}

// CreateAccount регистрирует аккаунт: проверяет уникальность username/email,
// совпадение пароля с подтверждением и минимальную длину, хеширует пароль.
// Предварительные проверки дают дружелюбное сообщение, но решающим остается
// уникальное ограничение БД - гонку двух одинаковых регистраций разрешает она.
func (s *accountService) CreateAccount(ctx context.Context, username, email, password, confirmation string) (*domain.User, error) {
	if username == "" {
		return nil, domain.NewMissingFieldError("username")
	}
	if email == "" {
		return nil, domain.NewMissingFieldError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.ErrInvalidEmail
	}
	if password != confirmation {
		return nil, domain.ErrPasswordMismatch
	}
	if len(password) < s.minPasswordLen {
		return nil, domain.NewWeakPasswordError(s.minPasswordLen)
	}

	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, domain.NewUserExistsError("username", username)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.NewUserExistsError("e-mail", email)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// SignIn проверяет учетные данные и возвращает подписанный токен.
// Идентификатором может быть username или email.
func (s *accountService) SignIn(ctx context.Context, identifier, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, identifier)
	if errors.Is(err, domain.ErrNotFound) {
		user, err = s.userRepo.GetByEmail(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.NewNotFoundError("user " + identifier)
		}
		return "", err
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return "", domain.ErrInvalidPassword
	}

	return s.tokens.Issue(user.ID, user.Username)
}

// UpdateAccount применяет частичное обновление: заданные поля меняются,
// nil-поля остаются прежними; пароль перехешируется при замене
func (s *accountService) UpdateAccount(ctx context.Context, userID int64, update domain.AccountUpdate) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("user with id %d", userID))
		}
		return nil, err
	}

	if update.Username != nil {
		if *update.Username == "" {
			return nil, domain.NewMissingFieldError("username")
		}
		user.Username = *update.Username
	}
	if update.Email != nil {
		if _, err := mail.ParseAddress(*update.Email); err != nil {
			return nil, domain.ErrInvalidEmail
		}
		user.Email = *update.Email
	}
	if update.Password != nil {
		if len(*update.Password) < s.minPasswordLen {
			return nil, domain.NewWeakPasswordError(s.minPasswordLen)
		}
		hash, err := s.hasher.Hash(*update.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("user with id %d", userID))
		}
		return nil, err
	}

	return user, nil
}

func (s *accountService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("user with id %d", userID))
		}
		return nil, err
	}

	return user, nil
}

func (s *accountService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.GetAll(ctx)
}

// ListUserSquads возвращает группы, в которых состоит пользователь
func (s *accountService) ListUserSquads(ctx context.Context, userID int64) ([]*domain.Squad, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("user with id %d", userID))
		}
		return nil, err
	}

	return s.squadRepo.GetByUserID(ctx, userID)
}
