package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `u.id, u.email, u.password_hash, u.first_name, u.last_name, u.lockout_end, u.created_at, u.updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste el usuario y sus roles iniciales. Se invoca con un repo
// atado a una transacción (TxRunner): si falla el alta de roles, el insert
// del usuario cae con ella.
func (r *UserRepo) Create(user *entity.User) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO users (id, email, password_hash, first_name, last_name, lockout_end, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.LockoutEnd, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	if len(user.Roles) > 0 {
		if err := r.AddRoles(user.ID, user.Roles); err != nil {
			return err
		}
	}
	return nil
}

// GetByID obtiene un usuario con sus roles. Devuelve nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getBy(`u.id = $1`, id)
}

// GetByEmail busca por email exacto (case-insensitive). Devuelve nil si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.getBy(`LOWER(u.email) = LOWER($1)`, email)
}

func (r *UserRepo) getBy(cond string, arg any) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users u WHERE ` + cond
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.LockoutEnd, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	roles, err := r.GetRoles(u.ID)
	if err != nil {
		return nil, err
	}
	u.Roles = roles
	return &u, nil
}

// List lista usuarios con búsqueda opcional sobre nombre, apellido y email.
func (r *UserRepo) List(search string, limit, offset int) ([]*entity.User, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	n := 0
	if search != "" {
		n++
		where += fmt.Sprintf(` AND (u.first_name ILIKE '%%' || $%d || '%%' OR u.last_name ILIKE '%%' || $%d || '%%' OR u.email ILIKE '%%' || $%d || '%%')`, n, n, n)
		args = append(args, search)
	}

	var total int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM users u`+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	query := `SELECT ` + userColumns + ` FROM users u` + where +
		fmt.Sprintf(` ORDER BY u.created_at DESC LIMIT $%d OFFSET $%d`, n+1, n+2)
	args = append(args, limit, offset)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
			&u.LockoutEnd, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	for _, u := range list {
		roles, err := r.GetRoles(u.ID)
		if err != nil {
			return nil, 0, err
		}
		u.Roles = roles
	}
	return list, total, nil
}

// Delete elimina el usuario. Las filas de user_roles caen por FK en cascada.
func (r *UserRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetLockout fija o limpia (nil) la fecha de fin de bloqueo.
// Devuelve false si el usuario no existe.
func (r *UserRepo) SetLockout(id string, until *time.Time) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE users SET lockout_end = $2, updated_at = NOW() WHERE id = $1`,
		id, until,
	)
	if err != nil {
		return false, fmt.Errorf("set lockout: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// GetRoles devuelve los nombres de rol del usuario ordenados.
func (r *UserRepo) GetRoles(userID string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT role FROM user_roles WHERE user_id = $1 ORDER BY role`, userID)
	if err != nil {
		return nil, fmt.Errorf("get roles: %w", err)
	}
	defer rows.Close()
	var roles []string
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// AddRoles asigna roles al usuario, ignorando los que ya tenga.
func (r *UserRepo) AddRoles(userID string, roles []string) error {
	for _, role := range roles {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			userID, role,
		)
		if err != nil {
			return fmt.Errorf("add role %s: %w", role, err)
		}
	}
	return nil
}

// RemoveRoles quita roles del usuario.
func (r *UserRepo) RemoveRoles(userID string, roles []string) error {
	if len(roles) == 0 {
		return nil
	}
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM user_roles WHERE user_id = $1 AND role = ANY($2)`,
		userID, roles,
	)
	if err != nil {
		return fmt.Errorf("remove roles: %w", err)
	}
	return nil
}
