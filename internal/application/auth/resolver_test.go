package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bilemo-api/internal/application/auth"
	"github.com/jhoicas/bilemo-api/internal/domain"
	"github.com/jhoicas/bilemo-api/internal/domain/entity"
	"github.com/jhoicas/bilemo-api/internal/domain/repository"
	"github.com/jhoicas/bilemo-api/internal/infrastructure/fixtures"
	"github.com/jhoicas/bilemo-api/internal/infrastructure/memory"
)

var epoch = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.NewStore()
	_, err := fixtures.Load(context.Background(), fixtures.Repos{
		Customers: s.Customers(), Phones: s.Phones(), Users: s.Users(),
	}, epoch)
	require.NoError(t, err)
	return s
}

// failingClear devuelve error al borrar credenciales.
type failingClear struct {
	repository.UserRepository
	calls int
}

func (f *failingClear) UpdateToken(context.Context, string, string, *time.Time) error {
	f.calls++
	return errors.New("disco lleno")
}

func TestResolve_SinToken(t *testing.T) {
	r := auth.NewCredentialResolver(seededStore(t).Users(), clock.NewMock(), true, nil)
	for _, tok := range []string{"", "   "} {
		_, err := r.Resolve(context.Background(), tok)
		assert.ErrorIs(t, err, domain.ErrTokenMissing)
	}
}

func TestResolve_TokenDesconocido(t *testing.T) {
	r := auth.NewCredentialResolver(seededStore(t).Users(), clock.NewMock(), true, nil)
	_, err := r.Resolve(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestResolve_TokenValido(t *testing.T) {
	clk := clock.NewMock()
	clk.Set(epoch)
	r := auth.NewCredentialResolver(seededStore(t).Users(), clk, true, nil)

	u, err := r.Resolve(context.Background(), fixtures.Token1)
	require.NoError(t, err)
	assert.Equal(t, fixtures.UserID(1), u.ID)
	assert.True(t, u.HasRole(entity.RoleAdmin))
}

func TestResolve_TokenVencidoSeBorra(t *testing.T) {
	clk := clock.NewMock()
	clk.Set(epoch)
	store := seededStore(t)
	r := auth.NewCredentialResolver(store.Users(), clk, true, nil)

	_, err := r.Resolve(context.Background(), fixtures.ExpiredToken)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)

	u, err := store.Users().GetByID(context.Background(), fixtures.UserID(5))
	require.NoError(t, err)
	assert.Empty(t, u.Token)
	assert.Nil(t, u.TokenValidity)

	_, err = r.Resolve(context.Background(), fixtures.ExpiredToken)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid, "una vez borrada, la credencial ya no existe")
}

func TestResolve_TokenVencidoSinBorrar(t *testing.T) {
	clk := clock.NewMock()
	clk.Set(epoch)
	store := seededStore(t)
	r := auth.NewCredentialResolver(store.Users(), clk, false, nil)

	_, err := r.Resolve(context.Background(), fixtures.ExpiredToken)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)

	u, err := store.Users().GetByID(context.Background(), fixtures.UserID(5))
	require.NoError(t, err)
	assert.Equal(t, fixtures.ExpiredToken, u.Token)
}

func TestResolve_FalloAlBorrarNoOcultaElVencimiento(t *testing.T) {
	clk := clock.NewMock()
	clk.Set(epoch)
	repo := &failingClear{UserRepository: seededStore(t).Users()}
	r := auth.NewCredentialResolver(repo, clk, true, nil)

	_, err := r.Resolve(context.Background(), fixtures.ExpiredToken)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
	assert.Equal(t, 1, repo.calls)
}

func TestResolve_VenceConElReloj(t *testing.T) {
	clk := clock.NewMock()
	clk.Set(epoch)
	r := auth.NewCredentialResolver(seededStore(t).Users(), clk, false, nil)

	_, err := r.Resolve(context.Background(), fixtures.Token2)
	require.NoError(t, err)

	clk.Add(366 * 24 * time.Hour)
	_, err = r.Resolve(context.Background(), fixtures.Token2)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
