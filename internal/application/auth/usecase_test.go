package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users     map[string]*entity.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(string, int, int) ([]*entity.User, int, error) { return nil, 0, nil }
func (r *fakeUserRepo) Delete(id string) error                             { delete(r.users, id); return nil }
func (r *fakeUserRepo) SetLockout(string, *time.Time) (bool, error)        { return false, nil }
func (r *fakeUserRepo) GetRoles(string) ([]string, error)                  { return nil, nil }
func (r *fakeUserRepo) AddRoles(string, []string) error                    { return nil }
func (r *fakeUserRepo) RemoveRoles(string, []string) error                 { return nil }

// recordingTxRunner cuenta las ejecuciones y pasa el repo tal cual;
// si fn falla no se persiste nada, como haría un rollback.
type recordingTxRunner struct {
	repo  *fakeUserRepo
	calls int
}

func (r *recordingTxRunner) RunUsers(_ context.Context, fn func(repository.UserRepository) error) error {
	r.calls++
	return fn(r.repo)
}

func newAuthUC() (*auth.AuthUseCase, *fakeUserRepo, *recordingTxRunner) {
	repo := newFakeUserRepo()
	runner := &recordingTxRunner{repo: repo}
	uc := auth.NewAuthUseCase(repo, runner, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "tienda-api-test",
	})
	return uc, repo, runner
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:     "olena@tienda.test",
		Password:  "contraseña-larga",
		FirstName: "Olena",
		LastName:  "Kovalenko",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register
// ──────────────────────────────────────────────────────────────────────────────

// El alta del usuario y sus roles corre dentro del tx runner: una cuenta
// nunca queda registrada a medias, sin roles.
func TestRegister_CreaDentroDeTransaccion(t *testing.T) {
	uc, repo, runner := newAuthUC()

	out, err := uc.Register(context.Background(), registerRequest())

	require.NoError(t, err)
	assert.Equal(t, 1, runner.calls, "el alta debe pasar por el tx runner")
	created := repo.users[out.ID]
	require.NotNil(t, created)
	assert.Equal(t, []string{entity.RoleCliente}, created.Roles)
	assert.NotEqual(t, "contraseña-larga", created.PasswordHash, "la password nunca se guarda en claro")
}

func TestRegister_FalloEnElAltaNoDejaUsuario(t *testing.T) {
	uc, repo, runner := newAuthUC()
	repo.createErr = errors.New("insert user: conexión perdida")

	_, err := uc.Register(context.Background(), registerRequest())

	require.Error(t, err)
	assert.Equal(t, 1, runner.calls)
	assert.Empty(t, repo.users, "no debe quedar cuenta a medio crear")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, repo, _ := newAuthUC()
	repo.users["u1"] = &entity.User{ID: "u1", Email: "olena@tienda.test"}

	_, err := uc.Register(context.Background(), registerRequest())

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_PasswordCorta(t *testing.T) {
	uc, _, runner := newAuthUC()

	req := registerRequest()
	req.Password = "corta"
	_, err := uc.Register(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, runner.calls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func seedLoginUser(t *testing.T, repo *fakeUserRepo, password string, lockout *time.Time) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	repo.users["u1"] = &entity.User{
		ID:           "u1",
		Email:        "olena@tienda.test",
		PasswordHash: string(hash),
		Roles:        []string{entity.RoleCliente},
		LockoutEnd:   lockout,
	}
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc, repo, _ := newAuthUC()
	seedLoginUser(t, repo, "contraseña-larga", nil)

	out, err := uc.Login(dto.LoginRequest{Email: "olena@tienda.test", Password: "contraseña-larga"})

	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "u1", out.User.ID)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, repo, _ := newAuthUC()
	seedLoginUser(t, repo, "contraseña-larga", nil)

	_, err := uc.Login(dto.LoginRequest{Email: "olena@tienda.test", Password: "otra"})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaBloqueada(t *testing.T) {
	uc, repo, _ := newAuthUC()
	lockout := time.Now().AddDate(100, 0, 0)
	seedLoginUser(t, repo, "contraseña-larga", &lockout)

	_, err := uc.Login(dto.LoginRequest{Email: "olena@tienda.test", Password: "contraseña-larga"})

	assert.ErrorIs(t, err, domain.ErrLockedOut)
}

func TestLogin_LockoutVencidoPermiteEntrar(t *testing.T) {
	uc, repo, _ := newAuthUC()
	expired := time.Now().Add(-time.Hour)
	seedLoginUser(t, repo, "contraseña-larga", &expired)

	out, err := uc.Login(dto.LoginRequest{Email: "olena@tienda.test", Password: "contraseña-larga"})

	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}
