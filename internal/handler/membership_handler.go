package handler

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) CreateMembership(w http.ResponseWriter, r *http.Request) {
	var req MembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, newBadRequestError("invalid request body"))
		return
	}
	if req.UserID == 0 || req.SquadID == 0 {
		h.handleError(w, newBadRequestError("user_id and squad_id are required"))
		return
	}

	membership, err := h.membershipService.AddMembership(r.Context(), req.UserID, req.SquadID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateMembershipResponse{
		Membership: MembershipResponse{
			UserID:  membership.UserID,
			SquadID: membership.SquadID,
		},
	})
}

func (h *Handler) DeleteMembership(w http.ResponseWriter, r *http.Request) {
	var req MembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, newBadRequestError("invalid request body"))
		return
	}
	if req.UserID == 0 || req.SquadID == 0 {
		h.handleError(w, newBadRequestError("user_id and squad_id are required"))
		return
	}

	if err := h.membershipService.RemoveMembership(r.Context(), req.UserID, req.SquadID); err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(MessageResponse{Message: "membership deleted successfully"})
}
