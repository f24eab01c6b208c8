package entity

import (
	"slices"
	"time"
)

// Roles válidos para User. RoleUser es el rol base: todo usuario lo tiene aunque no se almacene.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// SupportedRoles enumeración cerrada de roles aceptados en los payloads.
var SupportedRoles = []string{RoleUser, RoleAdmin}

// IsSupportedRole indica si role pertenece a SupportedRoles.
func IsSupportedRole(role string) bool {
	return slices.Contains(SupportedRoles, role)
}

// User representa un usuario (principal) de la API; pertenece a exactamente un Customer.
type User struct {
	ID            string
	CustomerID    string
	FullName      string
	Email         string
	PasswordHash  string     // bcrypt hash, nunca plano en dominio después de persistir
	Roles         []string   // roles almacenados, sin el rol base
	Token         string     // credencial bearer opaca; vacío si no tiene
	TokenValidity *time.Time // vencimiento de Token
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// EffectiveRoles roles almacenados más el rol base, sin duplicados.
func (u *User) EffectiveRoles() []string {
	roles := make([]string, 0, len(u.Roles)+1)
	for _, r := range u.Roles {
		if !slices.Contains(roles, r) {
			roles = append(roles, r)
		}
	}
	if !slices.Contains(roles, RoleUser) {
		roles = append(roles, RoleUser)
	}
	return roles
}

// HasRole evalúa role contra los roles efectivos.
func (u *User) HasRole(role string) bool {
	return slices.Contains(u.EffectiveRoles(), role)
}

// TokenExpiredAt indica si la credencial está vencida en now. Sin vencimiento registrado
// la credencial se considera vencida.
func (u *User) TokenExpiredAt(now time.Time) bool {
	return u.TokenValidity == nil || now.After(*u.TokenValidity)
}

// Clone copia profunda (roles y punteros de fecha) para no compartir estado entre peticiones.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Roles = slices.Clone(u.Roles)
	if u.TokenValidity != nil {
		t := *u.TokenValidity
		c.TokenValidity = &t
	}
	if u.UpdatedAt != nil {
		t := *u.UpdatedAt
		c.UpdatedAt = &t
	}
	return &c
}

// NormalizeRoles elimina duplicados y el rol base, conservando el orden de entrada.
func NormalizeRoles(roles []string) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		if r == RoleUser || slices.Contains(out, r) {
			continue
		}
		out = append(out, r)
	}
	return out
}
