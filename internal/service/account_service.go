package service

import (
	"context"

	"github.com/avagyan/gym-squads/internal/domain"
)

// PasswordHasher - контракт одностороннего хеширования паролей
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// TokenIssuer выпускает подписанный токен для проверенной личности
type TokenIssuer interface {
	Issue(userID int64, username string) (string, error)
}

type AccountService interface {
	CreateAccount(ctx context.Context, username, email, password, confirmation string) (*domain.User, error)
	SignIn(ctx context.Context, identifier, password string) (string, error)
	UpdateAccount(ctx context.Context, userID int64, update domain.AccountUpdate) (*domain.User, error)
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	ListUserSquads(ctx context.Context, userID int64) ([]*domain.Squad, error)
}
