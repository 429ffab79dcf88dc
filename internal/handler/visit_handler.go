package handler

import (
	"encoding/json"
	"net/http"
	"time"
)

func (h *Handler) AddVisit(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req AddVisitRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.handleError(w, newBadRequestError("invalid request body"))
			return
		}
	}

	var visitDate *time.Time
	if req.VisitDate != nil {
		parsed, err := time.Parse(time.RFC3339, *req.VisitDate)
		if err != nil {
			h.handleError(w, newBadRequestError("visit_date must be in RFC3339 format"))
			return
		}
		visitDate = &parsed
	}

	visit, err := h.visitService.AddVisit(r.Context(), userID, visitDate)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(AddVisitResponse{Visit: domainVisitToHTTP(visit)})
}

func (h *Handler) DeleteVisit(w http.ResponseWriter, r *http.Request) {
	visitID, err := pathID(r, "visitId")
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.visitService.DeleteVisit(r.Context(), visitID); err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(MessageResponse{Message: "visit deleted successfully"})
}

func (h *Handler) GetUserVisits(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		h.handleError(w, err)
		return
	}

	visits, err := h.visitService.ListUserVisits(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(VisitsResponse{Visits: domainVisitsToHTTP(visits)})
}
