package handler

import "github.com/avagyan/gym-squads/internal/service"

type Handler struct {
	accountService    service.AccountService
	squadService      service.SquadService
	membershipService service.MembershipService
	visitService      service.VisitService
}

func NewHandler(
	accountService service.AccountService,
	squadService service.SquadService,
	membershipService service.MembershipService,
	visitService service.VisitService,
) *Handler {
	return &Handler{
		accountService:    accountService,
		squadService:      squadService,
		membershipService: membershipService,
		visitService:      visitService,
	}
}
