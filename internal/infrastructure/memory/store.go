package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/bilemo-api/internal/domain"
	"github.com/jhoicas/bilemo-api/internal/domain/entity"
	"github.com/jhoicas/bilemo-api/internal/domain/repository"
)

// Store almacenamiento en memoria para desarrollo y tests. Aplica las mismas restricciones de
// unicidad que el esquema PostgreSQL (name, email y token de usuario) y devuelve copias, nunca
// punteros internos.
type Store struct {
	mu sync.RWMutex

	customers map[string]entity.Customer
	brands    map[string]entity.Brand
	phones    map[string]entity.Phone
	users     map[string]*entity.User
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{
		customers: make(map[string]entity.Customer),
		brands:    make(map[string]entity.Brand),
		phones:    make(map[string]entity.Phone),
		users:     make(map[string]*entity.User),
	}
}

// Customers adaptador CustomerRepository sobre el store.
func (s *Store) Customers() *CustomerRepo { return &CustomerRepo{s: s} }

// Phones adaptador PhoneRepository sobre el store.
func (s *Store) Phones() *PhoneRepo { return &PhoneRepo{s: s} }

// Users adaptador UserRepository sobre el store.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

var (
	_ repository.CustomerRepository = (*CustomerRepo)(nil)
	_ repository.PhoneRepository    = (*PhoneRepo)(nil)
	_ repository.UserRepository     = (*UserRepo)(nil)
)

// page aplica limit/offset sobre una lista ya ordenada.
func page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return nil
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

// byCreation orden estable de listados: fecha de creación y luego id, como en PostgreSQL.
func byCreation(aAt, bAt time.Time, aID, bID string) bool {
	if !aAt.Equal(bAt) {
		return aAt.Before(bAt)
	}
	return aID < bID
}

// CustomerRepo clientes en memoria.
type CustomerRepo struct{ s *Store }

// Create implementa repository.CustomerRepository.
func (r *CustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.customers[c.ID]; exists {
		return domain.ErrDuplicate
	}
	r.s.customers[c.ID] = *c
	return nil
}

// GetByID implementa repository.CustomerRepository.
func (r *CustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.customers[strings.TrimSpace(id)]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// List implementa repository.CustomerRepository.
func (r *CustomerRepo) List(_ context.Context, limit, offset int) ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]*entity.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		c := c
		all = append(all, &c)
	}
	sort.Slice(all, func(i, j int) bool {
		return byCreation(all[i].CreatedAt, all[j].CreatedAt, all[i].ID, all[j].ID)
	})
	return page(all, limit, offset), nil
}

// PhoneRepo catálogo en memoria.
type PhoneRepo struct{ s *Store }

// CreateBrand implementa repository.PhoneRepository.
func (r *PhoneRepo) CreateBrand(_ context.Context, b *entity.Brand) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.brands[b.ID]; exists {
		return domain.ErrDuplicate
	}
	r.s.brands[b.ID] = *b
	return nil
}

// Create implementa repository.PhoneRepository. La marca debe existir.
func (r *PhoneRepo) Create(_ context.Context, p *entity.Phone) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.phones[p.ID]; exists {
		return domain.ErrDuplicate
	}
	if _, ok := r.s.brands[p.Brand.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.phones[p.ID] = *p
	return nil
}

// GetByID implementa repository.PhoneRepository.
func (r *PhoneRepo) GetByID(_ context.Context, id string) (*entity.Phone, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.phones[strings.TrimSpace(id)]
	if !ok {
		return nil, nil
	}
	return r.withBrand(p), nil
}

// List implementa repository.PhoneRepository.
func (r *PhoneRepo) List(_ context.Context, limit, offset int) ([]*entity.Phone, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := make([]*entity.Phone, 0, len(r.s.phones))
	for _, p := range r.s.phones {
		all = append(all, r.withBrand(p))
	}
	sort.Slice(all, func(i, j int) bool {
		return byCreation(all[i].CreatedAt, all[j].CreatedAt, all[i].ID, all[j].ID)
	})
	return page(all, limit, offset), nil
}

// withBrand copia p con la marca vigente. Requiere el lock tomado.
func (r *PhoneRepo) withBrand(p entity.Phone) *entity.Phone {
	if b, ok := r.s.brands[p.Brand.ID]; ok {
		p.Brand = b
	}
	if p.UpdatedAt != nil {
		t := *p.UpdatedAt
		p.UpdatedAt = &t
	}
	return &p
}

// UserRepo usuarios en memoria.
type UserRepo struct{ s *Store }

// Create implementa repository.UserRepository.
func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.users[u.ID]; exists {
		return domain.ErrDuplicate
	}
	if r.conflictLocked(u) {
		return domain.ErrDuplicate
	}
	r.s.users[u.ID] = u.Clone()
	return nil
}

// GetByID implementa repository.UserRepository.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.users[strings.TrimSpace(id)].Clone(), nil
}

// GetByIDAndCustomer implementa repository.UserRepository.
func (r *UserRepo) GetByIDAndCustomer(_ context.Context, id, customerID string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[strings.TrimSpace(id)]
	if !ok || u.CustomerID != customerID {
		return nil, nil
	}
	return u.Clone(), nil
}

// GetByEmail implementa repository.UserRepository.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.findFirst(func(u *entity.User) bool { return u.Email == email }), nil
}

// GetByToken implementa repository.UserRepository.
func (r *UserRepo) GetByToken(_ context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, nil
	}
	return r.findFirst(func(u *entity.User) bool { return u.Token == token }), nil
}

// ExistsByFullName implementa repository.UserRepository.
func (r *UserRepo) ExistsByFullName(_ context.Context, fullName, excludeID string) (bool, error) {
	u := r.findFirst(func(u *entity.User) bool { return u.FullName == fullName && u.ID != excludeID })
	return u != nil, nil
}

// ExistsByEmail implementa repository.UserRepository.
func (r *UserRepo) ExistsByEmail(_ context.Context, email, excludeID string) (bool, error) {
	u := r.findFirst(func(u *entity.User) bool { return u.Email == email && u.ID != excludeID })
	return u != nil, nil
}

// ListByCustomer implementa repository.UserRepository.
func (r *UserRepo) ListByCustomer(_ context.Context, customerID string, limit, offset int) ([]*entity.User, error) {
	return page(r.byCustomer(customerID), limit, offset), nil
}

// CountByCustomer implementa repository.UserRepository.
func (r *UserRepo) CountByCustomer(_ context.Context, customerID string) (int, error) {
	return len(r.byCustomer(customerID)), nil
}

// Update implementa repository.UserRepository.
func (r *UserRepo) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	if r.conflictLocked(u) {
		return domain.ErrDuplicate
	}
	r.s.users[u.ID] = u.Clone()
	return nil
}

// UpdateToken implementa repository.UserRepository.
func (r *UserRepo) UpdateToken(_ context.Context, id, token string, validity *time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	if token != "" {
		for _, other := range r.s.users {
			if other.ID != id && other.Token == token {
				return domain.ErrDuplicate
			}
		}
	}
	u.Token = token
	u.TokenValidity = nil
	if validity != nil {
		t := *validity
		u.TokenValidity = &t
	}
	return nil
}

// Delete implementa repository.UserRepository.
func (r *UserRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.users, id)
	return nil
}

func (r *UserRepo) findFirst(match func(*entity.User) bool) *entity.User {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if match(u) {
			return u.Clone()
		}
	}
	return nil
}

func (r *UserRepo) byCustomer(customerID string) []*entity.User {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.User
	for _, u := range r.s.users {
		if u.CustomerID == customerID {
			out = append(out, u.Clone())
		}
	}
	slices.SortFunc(out, func(a, b *entity.User) int {
		if byCreation(a.CreatedAt, b.CreatedAt, a.ID, b.ID) {
			return -1
		}
		if byCreation(b.CreatedAt, a.CreatedAt, b.ID, a.ID) {
			return 1
		}
		return 0
	})
	return out
}

// conflictLocked indica si otro usuario ya usa el name, email o token de u. Requiere el lock tomado.
func (r *UserRepo) conflictLocked(u *entity.User) bool {
	for _, other := range r.s.users {
		if other.ID == u.ID {
			continue
		}
		if other.FullName == u.FullName || other.Email == u.Email {
			return true
		}
		if u.Token != "" && other.Token == u.Token {
			return true
		}
	}
	return false
}
