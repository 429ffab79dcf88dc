package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avagyan/gym-squads/internal/domain"
)

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		statusCode := getStatusCode(domainErr.Code)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		json.NewEncoder(w).Encode(ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
		return
	}

	// Детали ошибок хранилища наружу не выходят
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case "USER_EXISTS", "SQUAD_EXISTS", "ALREADY_MEMBER":
		return http.StatusConflict
	case "PASSWORD_MISMATCH", "WEAK_PASSWORD", "INVALID_EMAIL", "MISSING_FIELD", "INVALID_RANGE", "BAD_REQUEST":
		return http.StatusBadRequest
	case "INVALID_PASSWORD":
		return http.StatusUnauthorized
	case "NOT_FOUND":
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func newBadRequestError(message string) *domain.DomainError {
	return &domain.DomainError{
		Code:    "BAD_REQUEST",
		Message: message,
	}
}
