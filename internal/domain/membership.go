package domain

import "time"

type Membership struct {
	ID        int64
	UserID    int64
	SquadID   int64
	CreatedAt time.Time
	UpdatedAt *time.Time
}
