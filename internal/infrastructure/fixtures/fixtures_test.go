package fixtures_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/bilemo-api/internal/domain/entity"
	"github.com/jhoicas/bilemo-api/internal/infrastructure/fixtures"
	"github.com/jhoicas/bilemo-api/internal/infrastructure/memory"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestID_Determinista(t *testing.T) {
	assert.Equal(t, fixtures.UserID(1), fixtures.UserID(1))
	assert.NotEqual(t, fixtures.UserID(1), fixtures.CustomerID(1))
	assert.Len(t, fixtures.PhoneID(3), 36)
}

func TestBuild(t *testing.T) {
	d, err := fixtures.Build(now)
	require.NoError(t, err)

	assert.Len(t, d.Brands, 3)
	assert.Len(t, d.Phones, 20)
	assert.Len(t, d.Customers, 2)
	require.Len(t, d.Users, 6)

	admin := d.Users[0]
	assert.True(t, admin.HasRole(entity.RoleAdmin))
	assert.False(t, admin.TokenExpiredAt(now))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(fixtures.DefaultPassword)))

	assert.False(t, d.Users[1].HasRole(entity.RoleAdmin))
	assert.True(t, d.Users[4].TokenExpiredAt(now))
	assert.Empty(t, d.Users[5].Token)
	assert.Equal(t, fixtures.CustomerID(2), d.Users[2].CustomerID)
}

func TestLoad_EnMemoria(t *testing.T) {
	store := memory.NewStore()
	repos := fixtures.Repos{Customers: store.Customers(), Phones: store.Phones(), Users: store.Users()}
	ctx := context.Background()

	_, err := fixtures.Load(ctx, repos, now)
	require.NoError(t, err)

	u, err := repos.Users.GetByToken(ctx, fixtures.Token3)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "User 3", u.FullName)

	p, err := repos.Phones.GetByID(ctx, fixtures.PhoneID(20))
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Marca 3", p.Brand.Name)

	// Los ids son deterministas: una segunda carga los encuentra ocupados.
	_, err = fixtures.Load(ctx, repos, now)
	assert.Error(t, err)
}
