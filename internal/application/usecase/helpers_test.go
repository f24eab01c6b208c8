package usecase_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bilemo-api/internal/application/auth"
	"github.com/jhoicas/bilemo-api/internal/application/usecase"
	"github.com/jhoicas/bilemo-api/internal/application/validation"
	"github.com/jhoicas/bilemo-api/internal/domain/entity"
	"github.com/jhoicas/bilemo-api/internal/domain/repository"
	"github.com/jhoicas/bilemo-api/internal/infrastructure/cache"
	"github.com/jhoicas/bilemo-api/internal/infrastructure/fixtures"
	"github.com/jhoicas/bilemo-api/internal/infrastructure/memory"
)

var epoch = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

var errDisk = errors.New("disco lleno")

// countingUsers cuenta lecturas de listado y mutaciones; failWrites simula un fallo de almacenamiento.
type countingUsers struct {
	repository.UserRepository
	lists      atomic.Int32
	mutations  atomic.Int32
	failWrites bool
}

func (c *countingUsers) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*entity.User, error) {
	c.lists.Add(1)
	return c.UserRepository.ListByCustomer(ctx, customerID, limit, offset)
}

func (c *countingUsers) Create(ctx context.Context, u *entity.User) error {
	if c.failWrites {
		return errDisk
	}
	c.mutations.Add(1)
	return c.UserRepository.Create(ctx, u)
}

func (c *countingUsers) Update(ctx context.Context, u *entity.User) error {
	if c.failWrites {
		return errDisk
	}
	c.mutations.Add(1)
	return c.UserRepository.Update(ctx, u)
}

func (c *countingUsers) UpdateToken(ctx context.Context, id, token string, validity *time.Time) error {
	c.mutations.Add(1)
	return c.UserRepository.UpdateToken(ctx, id, token, validity)
}

func (c *countingUsers) Delete(ctx context.Context, id string) error {
	if c.failWrites {
		return errDisk
	}
	c.mutations.Add(1)
	return c.UserRepository.Delete(ctx, id)
}

type countingPhones struct {
	repository.PhoneRepository
	lists atomic.Int32
}

func (c *countingPhones) List(ctx context.Context, limit, offset int) ([]*entity.Phone, error) {
	c.lists.Add(1)
	return c.PhoneRepository.List(ctx, limit, offset)
}

type harness struct {
	store  *memory.Store
	users  *countingUsers
	phones *countingPhones
	cache  *cache.TagCache
	clock  *clock.Mock
	userUC *usecase.UserUseCase
	phone  *usecase.PhoneUseCase
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store := memory.NewStore()
	_, err := fixtures.Load(context.Background(), fixtures.Repos{
		Customers: store.Customers(), Phones: store.Phones(), Users: store.Users(),
	}, epoch)
	require.NoError(t, err)

	clk := clock.NewMock()
	clk.Set(epoch)
	h := &harness{
		store:  store,
		users:  &countingUsers{UserRepository: store.Users()},
		phones: &countingPhones{PhoneRepository: store.Phones()},
		cache:  cache.NewTagCache(),
		clock:  clk,
	}
	resolver := auth.NewCredentialResolver(h.users, clk, false, nil)
	p := usecase.NewPipeline(resolver, store.Customers(), h.cache, clk, nil)
	h.userUC = usecase.NewUserUseCase(p, h.users, validation.NewUserValidator(h.users), 3)
	h.phone = usecase.NewPhoneUseCase(p, h.phones, 10)
	return h
}

func (h *harness) countUsers(t *testing.T, customerID string) int {
	t.Helper()
	n, err := h.store.Users().CountByCustomer(context.Background(), customerID)
	require.NoError(t, err)
	return n
}
