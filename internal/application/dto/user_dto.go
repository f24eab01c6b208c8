package dto

import "time"

// UserPayload cuerpo de creación y actualización de usuarios. Solo name, email, password y roles
// se leen del JSON; cualquier otro campo se ignora.
type UserPayload struct {
	Name     *string  `json:"name"`
	Email    *string  `json:"email"`
	Password *string  `json:"password"`
	Roles    []string `json:"roles"`
}

// UserListItem proyección de un usuario en el listado (grupo "list").
type UserListItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Links *Links `json:"_links,omitempty"`
}

// CustomerSummary cliente dueño, incluido en el detalle del usuario.
type CustomerSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserDetail proyección de detalle (grupo "detail").
type UserDetail struct {
	ID        string          `json:"id"`
	Customer  CustomerSummary `json:"customer"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Roles     []string        `json:"roles"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
	Links     *Links          `json:"_links,omitempty"`
}

// TokenRequest entrada para obtener una credencial bearer.
type TokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse credencial emitida y su vencimiento.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
