package server

import (
	"net/http"

	"github.com/avagyan/gym-squads/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /users", h.CreateAccount)
	mux.HandleFunc("POST /users/signin", h.SignIn)
	mux.HandleFunc("GET /users", h.GetUsers)
	mux.HandleFunc("GET /users/{userId}", h.GetUser)
	mux.HandleFunc("PUT /users/{userId}", h.UpdateAccount)
	mux.HandleFunc("GET /users/{userId}/squads", h.GetUserSquads)
	mux.HandleFunc("GET /users/{userId}/visits", h.GetUserVisits)
	mux.HandleFunc("POST /users/{userId}/visits", h.AddVisit)
	mux.HandleFunc("DELETE /visits/{visitId}", h.DeleteVisit)
	mux.HandleFunc("POST /squads", h.CreateSquad)
	mux.HandleFunc("GET /squads", h.GetSquads)
	mux.HandleFunc("GET /squads/{squadId}/members", h.GetSquadMembers)
	mux.HandleFunc("GET /squads/{squadId}/visits", h.GetSquadVisits)
	mux.HandleFunc("POST /memberships", h.CreateMembership)
	mux.HandleFunc("DELETE /memberships", h.DeleteMembership)
}
