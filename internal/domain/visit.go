package domain

import "time"

type Visit struct {
	ID        int64
	UserID    int64
	VisitDate time.Time
}

// SquadVisit - посещение участника группы, полученное через membership-связь
type SquadVisit struct {
	VisitDate time.Time
	UserID    int64
	Username  string
}
