package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bilemo-api/internal/domain"
	"github.com/jhoicas/bilemo-api/internal/infrastructure/fixtures"
	"github.com/jhoicas/bilemo-api/internal/infrastructure/memory"
)

func seeded(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.NewStore()
	_, err := fixtures.Load(context.Background(), fixtures.Repos{
		Customers: s.Customers(),
		Phones:    s.Phones(),
		Users:     s.Users(),
	}, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return s
}

func TestStore_PaginaUsuariosPorCliente(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	n, err := s.Users().CountByCustomer(ctx, fixtures.CustomerID(1))
	require.NoError(t, err)
	assert.Equal(t, 4, n, "users 1, 2, 5 y 6")

	first, err := s.Users().ListByCustomer(ctx, fixtures.CustomerID(1), 3, 0)
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, "User 1", first[0].FullName)
	assert.Equal(t, "User 2", first[1].FullName)
	assert.Equal(t, "User 5", first[2].FullName)

	second, err := s.Users().ListByCustomer(ctx, fixtures.CustomerID(1), 3, 3)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "User 6", second[0].FullName)

	empty, err := s.Users().ListByCustomer(ctx, fixtures.CustomerID(1), 3, 6)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStore_GetByIDAndCustomerFiltraPorCliente(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	u, err := s.Users().GetByIDAndCustomer(ctx, fixtures.UserID(3), fixtures.CustomerID(1))
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = s.Users().GetByIDAndCustomer(ctx, fixtures.UserID(3), fixtures.CustomerID(2))
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "User 3", u.FullName)
}

func TestStore_DevuelveCopias(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	u, err := s.Users().GetByID(ctx, fixtures.UserID(1))
	require.NoError(t, err)
	u.FullName = "mutado"
	u.Roles[0] = "OTRO"

	again, err := s.Users().GetByID(ctx, fixtures.UserID(1))
	require.NoError(t, err)
	assert.Equal(t, "User 1", again.FullName)
	assert.Equal(t, []string{"ADMIN"}, again.Roles)
}

func TestStore_UnicidadDeNameYEmail(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	u, err := s.Users().GetByID(ctx, fixtures.UserID(2))
	require.NoError(t, err)
	u.FullName = "User 1"
	assert.ErrorIs(t, s.Users().Update(ctx, u), domain.ErrDuplicate)

	exists, err := s.Users().ExistsByEmail(ctx, "contact1@testmail.com", fixtures.UserID(1))
	require.NoError(t, err)
	assert.False(t, exists, "el propio usuario se excluye")

	exists, err = s.Users().ExistsByEmail(ctx, "contact1@testmail.com", "")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStore_UpdateTokenYBusquedaPorToken(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	u, err := s.Users().GetByToken(ctx, fixtures.Token1)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, fixtures.UserID(1), u.ID)

	require.NoError(t, s.Users().UpdateToken(ctx, u.ID, "", nil))
	u, err = s.Users().GetByToken(ctx, fixtures.Token1)
	require.NoError(t, err)
	assert.Nil(t, u)

	assert.ErrorIs(t, s.Users().UpdateToken(ctx, fixtures.UserID(1), fixtures.Token2, nil), domain.ErrDuplicate)
}

func TestStore_TelefonosConMarca(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()

	list, err := s.Phones().List(ctx, 10, 10)
	require.NoError(t, err)
	require.Len(t, list, 10)
	assert.Equal(t, "Phone 11", list[0].Name)
	assert.NotEmpty(t, list[0].Brand.Name)

	p, err := s.Phones().GetByID(ctx, fixtures.PhoneID(1))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Marca 2", p.Brand.Name)

	missing, err := s.Phones().GetByID(ctx, "no-existe")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
