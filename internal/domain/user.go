package domain

import "time"

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// AccountUpdate описывает частичное обновление аккаунта:
// nil-поле означает "оставить как есть"
type AccountUpdate struct {
	Username *string
	Email    *string
	Password *string
}
