package handler

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) CreateSquad(w http.ResponseWriter, r *http.Request) {
	var req CreateSquadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, newBadRequestError("invalid request body"))
		return
	}

	squad, err := h.squadService.CreateSquad(r.Context(), req.SquadName, req.SquadDescription)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateSquadResponse{Squad: domainSquadToHTTP(squad)})
}

func (h *Handler) GetSquads(w http.ResponseWriter, r *http.Request) {
	squads, err := h.squadService.ListSquads(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SquadsResponse{Squads: domainSquadsToHTTP(squads)})
}

func (h *Handler) GetSquadMembers(w http.ResponseWriter, r *http.Request) {
	squadID, err := pathID(r, "squadId")
	if err != nil {
		h.handleError(w, err)
		return
	}

	users, err := h.squadService.ListMembers(r.Context(), squadID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(UsersResponse{Users: domainUsersToHTTP(users)})
}

func (h *Handler) GetSquadVisits(w http.ResponseWriter, r *http.Request) {
	squadID, err := pathID(r, "squadId")
	if err != nil {
		h.handleError(w, err)
		return
	}

	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")

	visits, err := h.visitService.ListSquadVisits(r.Context(), squadID, startDate, endDate)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SquadVisitsResponse{Visits: domainSquadVisitsToHTTP(visits)})
}
