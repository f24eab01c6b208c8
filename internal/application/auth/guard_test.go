package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/bilemo-api/internal/application/auth"
	"github.com/jhoicas/bilemo-api/internal/domain"
	"github.com/jhoicas/bilemo-api/internal/domain/entity"
)

func TestAuthorize(t *testing.T) {
	c1 := &entity.Customer{ID: "c1"}
	admin1 := &entity.User{ID: "u1", CustomerID: "c1", Roles: []string{entity.RoleAdmin}}
	user1 := &entity.User{ID: "u2", CustomerID: "c1"}
	admin2 := &entity.User{ID: "u3", CustomerID: "c2", Roles: []string{entity.RoleAdmin}}

	tests := []struct {
		name      string
		customer  *entity.Customer
		principal *entity.User
		role      string
		want      error
	}{
		{"cliente inexistente", nil, admin1, entity.RoleUser, domain.ErrTenantNotFound},
		{"otro cliente aunque sea admin", c1, admin2, entity.RoleAdmin, domain.ErrCrossTenant},
		{"otro cliente con rol base", c1, admin2, entity.RoleUser, domain.ErrCrossTenant},
		{"rol insuficiente", c1, user1, entity.RoleAdmin, domain.ErrInsufficientRole},
		{"rol base implícito", c1, user1, entity.RoleUser, nil},
		{"admin del cliente", c1, admin1, entity.RoleAdmin, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.Authorize(tt.customer, tt.principal, tt.role)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuthorizeRole_SinPrincipal(t *testing.T) {
	assert.ErrorIs(t, auth.AuthorizeRole(nil, entity.RoleUser), domain.ErrInsufficientRole)
}
