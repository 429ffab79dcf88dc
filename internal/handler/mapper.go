package handler

import (
	"time"

	"github.com/avagyan/gym-squads/internal/domain"
)

// domainUserToHTTP конвертирует пользователя в ответ API; хеш пароля наружу не выходит
func domainUserToHTTP(user *domain.User) UserResponse {
	var updatedAt *string
	if user.UpdatedAt != nil {
		updatedAtStr := user.UpdatedAt.Format(time.RFC3339)
		updatedAt = &updatedAtStr
	}

	return UserResponse{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: updatedAt,
	}
}

func domainUsersToHTTP(users []*domain.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, domainUserToHTTP(user))
	}
	return result
}

func domainSquadToHTTP(squad *domain.Squad) SquadResponse {
	return SquadResponse{
		SquadID:          squad.ID,
		SquadName:        squad.Name,
		SquadDescription: squad.Description,
	}
}

func domainSquadsToHTTP(squads []*domain.Squad) []SquadResponse {
	result := make([]SquadResponse, 0, len(squads))
	for _, squad := range squads {
		result = append(result, domainSquadToHTTP(squad))
	}
	return result
}

func domainVisitToHTTP(visit *domain.Visit) VisitResponse {
	return VisitResponse{
		VisitID:   visit.ID,
		UserID:    visit.UserID,
		VisitDate: visit.VisitDate.Format(time.RFC3339),
	}
}

func domainVisitsToHTTP(visits []*domain.Visit) []VisitResponse {
	result := make([]VisitResponse, 0, len(visits))
	for _, visit := range visits {
		result = append(result, domainVisitToHTTP(visit))
	}
	return result
}

func domainSquadVisitsToHTTP(visits []*domain.SquadVisit) []SquadVisitResponse {
	result := make([]SquadVisitResponse, 0, len(visits))
	for _, visit := range visits {
		result = append(result, SquadVisitResponse{
			VisitDate: visit.VisitDate.Format(time.RFC3339),
			UserID:    visit.UserID,
			Username:  visit.Username,
		})
	}
	return result
}
