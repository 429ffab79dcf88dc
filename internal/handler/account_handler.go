package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/avagyan/gym-squads/internal/domain"
)

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, newBadRequestError("invalid request body"))
		return
	}

	user, err := h.accountService.CreateAccount(r.Context(), req.Username, req.Email, req.Password, req.Confirmation)
	if err != nil {
		h.handleError(w, err)
		return
	}

	// Регистрация сразу выдает токен, как и вход
	token, err := h.accountService.SignIn(r.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateAccountResponse{
		User:  domainUserToHTTP(user),
		Token: token,
	})
}

func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, newBadRequestError("invalid request body"))
		return
	}
	if req.Identifier == "" || req.Password == "" {
		h.handleError(w, newBadRequestError("identifier and password are required"))
		return
	}

	token, err := h.accountService.SignIn(r.Context(), req.Identifier, req.Password)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SignInResponse{Token: token})
}

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.accountService.ListUsers(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(UsersResponse{Users: domainUsersToHTTP(users)})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		h.handleError(w, err)
		return
	}

	user, err := h.accountService.GetUser(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(GetUserResponse{User: domainUserToHTTP(user)})
}

func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, newBadRequestError("invalid request body"))
		return
	}

	user, err := h.accountService.UpdateAccount(r.Context(), userID, domain.AccountUpdate{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(UpdateAccountResponse{User: domainUserToHTTP(user)})
}

func (h *Handler) GetUserSquads(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		h.handleError(w, err)
		return
	}

	squads, err := h.accountService.ListUserSquads(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SquadsResponse{Squads: domainSquadsToHTTP(squads)})
}

// pathID извлекает числовой идентификатор из параметра пути
func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, newBadRequestError(name + " must be an integer")
	}
	return id, nil
}
