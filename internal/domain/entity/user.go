package entity

import "time"

// Roles conocidos del sistema. La asignación es muchos-a-muchos: un usuario
// puede tener varios roles a la vez.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleCliente = "cliente"
)

// User representa una cuenta del proveedor de identidad.
// LockoutEnd distinto de nil y en el futuro significa cuenta bloqueada;
// limpiar el campo desbloquea de inmediato.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	FirstName    string
	LastName     string
	Roles        []string
	LockoutEnd   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName devuelve nombre y apellido para mostrar.
func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsLockedOut indica si la cuenta está bloqueada en el instante now.
func (u *User) IsLockedOut(now time.Time) bool {
	return u.LockoutEnd != nil && u.LockoutEnd.After(now)
}

// HasRole indica si el usuario tiene el rol dado.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
