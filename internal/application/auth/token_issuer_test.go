package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bilemo-api/internal/application/auth"
	"github.com/jhoicas/bilemo-api/internal/application/dto"
	"github.com/jhoicas/bilemo-api/internal/domain"
	"github.com/jhoicas/bilemo-api/internal/infrastructure/fixtures"
	"github.com/jhoicas/bilemo-api/pkg/jwt"
)

const secret = "test-secret-key-for-unit-tests"

func TestIssueToken_EmiteYGuardaLaCredencial(t *testing.T) {
	clk := clock.NewMock()
	clk.Set(epoch)
	store := seededStore(t)
	uc := auth.NewAuthUseCase(store.Users(), auth.TokenConfig{Secret: secret, TTLMinutes: 120, Issuer: "bilemo-test"}, clk)

	out, err := uc.IssueToken(context.Background(), dto.TokenRequest{Email: "contact6@testmail.com", Password: fixtures.DefaultPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, epoch.Add(2*time.Hour), out.ExpiresAt)

	u, err := store.Users().GetByToken(context.Background(), out.Token)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, fixtures.UserID(6), u.ID)

	// La credencial emitida la resuelve el resolver mientras no venza.
	r := auth.NewCredentialResolver(store.Users(), clk, true, nil)
	resolved, err := r.Resolve(context.Background(), out.Token)
	require.NoError(t, err)
	assert.Equal(t, fixtures.UserID(6), resolved.ID)

	clk.Add(2*time.Hour + time.Second)
	_, err = r.Resolve(context.Background(), out.Token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestIssueToken_CredencialesIncorrectas(t *testing.T) {
	uc := auth.NewAuthUseCase(seededStore(t).Users(), auth.TokenConfig{Secret: secret, TTLMinutes: 120}, clock.NewMock())

	cases := []dto.TokenRequest{
		{Email: "contact1@testmail.com", Password: "otra"},
		{Email: "nadie@testmail.com", Password: fixtures.DefaultPassword},
		{Email: "", Password: ""},
	}
	for _, in := range cases {
		_, err := uc.IssueToken(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	}
}

func TestIssueToken_ClaimsDelToken(t *testing.T) {
	store := seededStore(t)
	uc := auth.NewAuthUseCase(store.Users(), auth.TokenConfig{Secret: secret, TTLMinutes: 60, Issuer: "bilemo-test"}, nil)

	out, err := uc.IssueToken(context.Background(), dto.TokenRequest{Email: "contact3@testmail.com", Password: fixtures.DefaultPassword})
	require.NoError(t, err)

	claims, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, fixtures.UserID(3), claims.Subject)
	assert.Equal(t, fixtures.CustomerID(2), claims.CustomerID)
}
