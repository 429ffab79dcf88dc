package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateAccountRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Confirmation string `json:"confirmation"`
}

type UserResponse struct {
	UserID    int64   `json:"user_id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt *string `json:"updated_at,omitempty"`
}

type CreateAccountResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type SignInRequest struct {
	// Identifier - username или e-mail
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type SignInResponse struct {
	Token string `json:"token"`
}

type UpdateAccountRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type UpdateAccountResponse struct {
	User UserResponse `json:"user"`
}

type UsersResponse struct {
	Users []UserResponse `json:"users"`
}

type GetUserResponse struct {
	User UserResponse `json:"user"`
}

type CreateSquadRequest struct {
	SquadName        string `json:"squad_name"`
	SquadDescription string `json:"squad_description"`
}

type SquadResponse struct {
	SquadID          int64  `json:"squad_id"`
	SquadName        string `json:"squad_name"`
	SquadDescription string `json:"squad_description,omitempty"`
}

type CreateSquadResponse struct {
	Squad SquadResponse `json:"squad"`
}

type SquadsResponse struct {
	Squads []SquadResponse `json:"squads"`
}

type MembershipRequest struct {
	UserID  int64 `json:"user_id"`
	SquadID int64 `json:"squad_id"`
}

type MembershipResponse struct {
	UserID  int64 `json:"user_id"`
	SquadID int64 `json:"squad_id"`
}

type CreateMembershipResponse struct {
	Membership MembershipResponse `json:"membership"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type AddVisitRequest struct {
	// VisitDate в формате RFC3339; пустое значение - текущее время
	VisitDate *string `json:"visit_date"`
}

type VisitResponse struct {
	VisitID   int64  `json:"visit_id"`
	UserID    int64  `json:"user_id"`
	VisitDate string `json:"visit_date"`
}

type AddVisitResponse struct {
	Visit VisitResponse `json:"visit"`
}

type VisitsResponse struct {
	Visits []VisitResponse `json:"visits"`
}

type SquadVisitResponse struct {
	VisitDate string `json:"visit_date"`
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
}

type SquadVisitsResponse struct {
	Visits []SquadVisitResponse `json:"visits"`
}
