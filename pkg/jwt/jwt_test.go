package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/bilemo-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerate_ParseDevuelveClaims(t *testing.T) {
	now := time.Now()
	tok, exp, err := pkgjwt.Generate(testSecret, "user-1", "customer-1", "bilemo-test", now, 2*time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	assert.WithinDuration(t, now.Add(2*time.Hour), exp, time.Second)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "customer-1", claims.CustomerID)
	assert.Equal(t, "bilemo-test", claims.Issuer)
}

func TestGenerate_TokensDistintosPorUsuario(t *testing.T) {
	now := time.Now()
	a, _, err := pkgjwt.Generate(testSecret, "user-1", "customer-1", "", now, time.Hour)
	require.NoError(t, err)
	b, _, err := pkgjwt.Generate(testSecret, "user-2", "customer-1", "", now, time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerate_ErrorSinSecret(t *testing.T) {
	_, _, err := pkgjwt.Generate("", "user-1", "customer-1", "", time.Now(), time.Hour)
	assert.Error(t, err)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, _, err := pkgjwt.Generate(testSecret, "user-1", "customer-1", "", time.Now(), time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestParse_TokenVencido(t *testing.T) {
	past := time.Now().Add(-3 * time.Hour)
	tok, _, err := pkgjwt.Generate(testSecret, "user-1", "customer-1", "", past, time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}
