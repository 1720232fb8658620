package dto

import "time"

// RegisterRequest entrada de registro.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido tras autenticar.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// EditRolesRequest conjunto deseado de roles: el resultado debe ser
// exactamente este conjunto, nunca una unión con los roles previos.
type EditRolesRequest struct {
	Roles []string `json:"roles"`
}

// UserListRequest filtros de listado (query params).
type UserListRequest struct {
	PageRequest
	Search string `query:"search"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Roles      []string   `json:"roles"`
	LockoutEnd *time.Time `json:"lockout_end,omitempty"`
	IsLocked   bool       `json:"is_locked"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
