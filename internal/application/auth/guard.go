package auth

import (
	"github.com/jhoicas/bilemo-api/internal/domain"
	"github.com/jhoicas/bilemo-api/internal/domain/entity"
)

// AuthorizeOwnership verifica que principal pertenezca al cliente customer.
// customer nil significa que el cliente de la ruta no existe.
func AuthorizeOwnership(customer *entity.Customer, principal *entity.User) error {
	if customer == nil {
		return domain.ErrTenantNotFound
	}
	if principal == nil || principal.CustomerID != customer.ID {
		return domain.ErrCrossTenant
	}
	return nil
}

// AuthorizeRole verifica que principal tenga requiredRole entre sus roles efectivos.
func AuthorizeRole(principal *entity.User, requiredRole string) error {
	if principal == nil || !principal.HasRole(requiredRole) {
		return domain.ErrInsufficientRole
	}
	return nil
}

// Authorize compone ambos controles: primero la pertenencia y después el rol, para que un
// administrador de otro cliente no obtenga información sobre este.
func Authorize(customer *entity.Customer, principal *entity.User, requiredRole string) error {
	if err := AuthorizeOwnership(customer, principal); err != nil {
		return err
	}
	return AuthorizeRole(principal, requiredRole)
}
