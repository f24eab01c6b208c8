package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveRoles_SiempreIncluyeRolBase(t *testing.T) {
	u := &User{}
	assert.Equal(t, []string{RoleUser}, u.EffectiveRoles())

	u.Roles = []string{RoleAdmin, RoleAdmin}
	assert.Equal(t, []string{RoleAdmin, RoleUser}, u.EffectiveRoles())
	assert.True(t, u.HasRole(RoleAdmin))
	assert.True(t, u.HasRole(RoleUser))
}

func TestNormalizeRoles_QuitaBaseYDuplicados(t *testing.T) {
	assert.Equal(t, []string{RoleAdmin}, NormalizeRoles([]string{RoleUser, RoleAdmin, RoleAdmin}))
	assert.Empty(t, NormalizeRoles([]string{RoleUser}))
}

func TestTokenExpiredAt(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	u := &User{}
	assert.True(t, u.TokenExpiredAt(now), "sin vencimiento se considera vencido")

	future := now.Add(time.Hour)
	u.TokenValidity = &future
	assert.False(t, u.TokenExpiredAt(now))

	past := now.Add(-time.Second)
	u.TokenValidity = &past
	assert.True(t, u.TokenExpiredAt(now))
}

func TestClone_NoCompartePunteros(t *testing.T) {
	validity := time.Now()
	u := &User{Roles: []string{RoleAdmin}, TokenValidity: &validity}
	c := u.Clone()
	c.Roles[0] = "X"
	*c.TokenValidity = validity.Add(time.Hour)

	assert.Equal(t, RoleAdmin, u.Roles[0])
	assert.Equal(t, validity, *u.TokenValidity)
}
