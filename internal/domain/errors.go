package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrUserExists - пользователь с таким username или email уже существует
	ErrUserExists = &DomainError{
		Code:    "USER_EXISTS",
		Message: "user already exists",
	}

	// ErrPasswordMismatch - пароль и подтверждение не совпадают
	ErrPasswordMismatch = &DomainError{
		Code:    "PASSWORD_MISMATCH",
		Message: "passwords do not match",
	}

	// ErrWeakPassword - пароль короче минимально допустимой длины
	ErrWeakPassword = &DomainError{
		Code:    "WEAK_PASSWORD",
		Message: "password is too short",
	}

	// ErrInvalidEmail - некорректный формат email
	ErrInvalidEmail = &DomainError{
		Code:    "INVALID_EMAIL",
		Message: "invalid email format",
	}

	// ErrInvalidPassword - пароль не подошел при входе
	ErrInvalidPassword = &DomainError{
		Code:    "INVALID_PASSWORD",
		Message: "invalid password",
	}

	// ErrSquadExists - группа с таким именем уже существует
	ErrSquadExists = &DomainError{
		Code:    "SQUAD_EXISTS",
		Message: "squad_name already exists",
	}

	// ErrAlreadyMember - пользователь уже состоит в группе
	ErrAlreadyMember = &DomainError{
		Code:    "ALREADY_MEMBER",
		Message: "user already has a membership in this squad",
	}

	// ErrInvalidRange - некорректный диапазон дат
	ErrInvalidRange = &DomainError{
		Code:    "INVALID_RANGE",
		Message: "invalid date range",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewUserExistsError создает ошибку USER_EXISTS с указанием поля и значения,
// по которым произошел конфликт
func NewUserExistsError(field, value string) *DomainError {
	return &DomainError{
		Code:    "USER_EXISTS",
		Message: fmt.Sprintf("an account already exists with the %s %s", field, value),
	}
}

// NewWeakPasswordError создает ошибку WEAK_PASSWORD с минимальной длиной
func NewWeakPasswordError(minLen int) *DomainError {
	return &DomainError{
		Code:    "WEAK_PASSWORD",
		Message: fmt.Sprintf("password must be at least %d characters", minLen),
	}
}

// NewSquadExistsError создает ошибку SQUAD_EXISTS с именем группы
func NewSquadExistsError(name string) *DomainError {
	return &DomainError{
		Code:    "SQUAD_EXISTS",
		Message: fmt.Sprintf("squad %s already exists", name),
	}
}

// NewMissingFieldError создает ошибку MISSING_FIELD для пустого обязательного поля
func NewMissingFieldError(field string) *DomainError {
	return &DomainError{
		Code:    "MISSING_FIELD",
		Message: fmt.Sprintf("%s is required", field),
	}
}

// NewInvalidRangeError создает ошибку INVALID_RANGE с пояснением
func NewInvalidRangeError(reason string) *DomainError {
	return &DomainError{
		Code:    "INVALID_RANGE",
		Message: reason,
	}
}
