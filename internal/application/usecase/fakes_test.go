package usecase_test

import (
	"context"
	"io"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso administrativos
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	categories    map[string]*entity.Category
	productCounts map[string]int
	childCounts   map[string]int
	deleted       []string
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories:    map[string]*entity.Category{},
		productCounts: map[string]int{},
		childCounts:   map[string]int{},
	}
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error {
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return f.categories[id], nil
}

func (f *fakeCategoryRepo) List() ([]repository.CategoryWithCounts, error) {
	var out []repository.CategoryWithCounts
	for _, c := range f.categories {
		out = append(out, repository.CategoryWithCounts{
			Category:      *c,
			ProductCount:  f.productCounts[c.ID],
			ChildrenCount: f.childCounts[c.ID],
		})
	}
	return out, nil
}

func (f *fakeCategoryRepo) ListRoots() ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.categories {
		if c.ParentID == "" {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(c *entity.Category) error {
	f.categories[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) Delete(id string) error {
	delete(f.categories, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeCategoryRepo) Exists(id string) (bool, error) {
	_, ok := f.categories[id]
	return ok, nil
}

func (f *fakeCategoryRepo) CountProducts(id string) (int, error) {
	return f.productCounts[id], nil
}

func (f *fakeCategoryRepo) CountSubcategories(id string) (int, error) {
	return f.childCounts[id], nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product

	// registro de llamadas masivas
	setAvailabilityIDs  []string
	setAvailabilityFlag bool
	deletedByIDs        []string
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, int, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if filter.OnlyAvailable && !p.IsAvailable {
			continue
		}
		out = append(out, p)
	}
	return out, len(out), nil
}

func (f *fakeProductRepo) ListAll() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) Delete(id string) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) SetAvailability(ids []string, available bool) (int64, error) {
	f.setAvailabilityIDs = ids
	f.setAvailabilityFlag = available
	var n int64
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			p.IsAvailable = available
			n++
		}
	}
	return n, nil
}

func (f *fakeProductRepo) DeleteByIDs(ids []string) (int64, error) {
	f.deletedByIDs = ids
	var n int64
	for _, id := range ids {
		if _, ok := f.products[id]; ok {
			delete(f.products, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeProductRepo) DecrementStock(productID string, qty int) error {
	if p, ok := f.products[productID]; ok {
		p.StockQuantity -= qty
	}
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(search string, limit, offset int) ([]*entity.User, int, error) {
	var out []*entity.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, len(out), nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) SetLockout(id string, until *time.Time) (bool, error) {
	u, ok := f.users[id]
	if !ok {
		return false, nil
	}
	u.LockoutEnd = until
	return true, nil
}

func (f *fakeUserRepo) GetRoles(id string) ([]string, error) {
	if u, ok := f.users[id]; ok {
		return u.Roles, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) AddRoles(id string, roles []string) error {
	u, ok := f.users[id]
	if !ok {
		return nil
	}
	for _, r := range roles {
		if !u.HasRole(r) {
			u.Roles = append(u.Roles, r)
		}
	}
	return nil
}

func (f *fakeUserRepo) RemoveRoles(id string, roles []string) error {
	u, ok := f.users[id]
	if !ok {
		return nil
	}
	remove := map[string]bool{}
	for _, r := range roles {
		remove[r] = true
	}
	var kept []string
	for _, r := range u.Roles {
		if !remove[r] {
			kept = append(kept, r)
		}
	}
	u.Roles = kept
	return nil
}

type fakeOrderRepo struct {
	ordersByUser map[string]int
}

func (f *fakeOrderRepo) Create(*entity.Order) error                { return nil }
func (f *fakeOrderRepo) GetByID(string) (*entity.Order, error)     { return nil, nil }
func (f *fakeOrderRepo) ListBetween(_, _ time.Time) ([]*entity.Order, error) {
	return nil, nil
}
func (f *fakeOrderRepo) List(repository.OrderFilter, int, int) ([]*entity.Order, int, error) {
	return nil, 0, nil
}
func (f *fakeOrderRepo) UpdateStatus(string, string, time.Time) (bool, error) {
	return false, nil
}
func (f *fakeOrderRepo) CountByUser(userID string) (int, error) {
	return f.ordersByUser[userID], nil
}

// fakeUsersTxRunner ejecuta fn directamente contra el repo, sin transacción real.
type fakeUsersTxRunner struct {
	repo repository.UserRepository
}

func (f *fakeUsersTxRunner) RunUsers(_ context.Context, fn func(repository.UserRepository) error) error {
	return fn(f.repo)
}

type fakeImageStore struct {
	saved   []string
	deleted []string
}

func (f *fakeImageStore) Save(fileName string, _ io.Reader) (string, error) {
	path := "/images/products/" + fileName
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeImageStore) Delete(path string) error {
	f.deleted = append(f.deleted, path)
	return nil
}
