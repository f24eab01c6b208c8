package postgres

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	assert.True(t, isUniqueViolation(wrapped))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("conexión rechazada")))
}

func TestLimitOffset(t *testing.T) {
	limit, offset := limitOffset(10, 20)
	require.NotNil(t, limit)
	assert.Equal(t, 10, *limit)
	assert.Equal(t, 20, offset)

	limit, offset = limitOffset(0, -5)
	assert.Nil(t, limit)
	assert.Zero(t, offset)
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))
	assert.Equal(t, "x", *nullIfEmpty("x"))
}

func TestMigracionesEmbebidas(t *testing.T) {
	names, err := fs.Glob(EmbedMigrations, "migrations/*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"migrations/00001_catalog.sql", "migrations/00002_customers_users.sql"}, names)
}
