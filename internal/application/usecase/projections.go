package usecase

import (
	"fmt"
	"slices"

	"github.com/jhoicas/bilemo-api/internal/application/dto"
	"github.com/jhoicas/bilemo-api/internal/domain/entity"
)

func toPhoneListItem(p *entity.Phone) dto.PhoneListItem {
	return dto.PhoneListItem{
		ID:           p.ID,
		Name:         p.Name,
		Brand:        p.Brand.Name,
		SellingPrice: p.SellingPrice,
	}
}

func toPhoneDetail(p *entity.Phone) dto.PhoneDetail {
	return dto.PhoneDetail{
		ID:           p.ID,
		Name:         p.Name,
		Brand:        p.Brand.Name,
		Color:        p.Color,
		DualSim:      p.DualSim,
		MemoryGB:     p.MemoryGB,
		Description:  p.Description,
		SellingPrice: p.SellingPrice,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toUserListItem(u *entity.User) dto.UserListItem {
	return dto.UserListItem{ID: u.ID, Name: u.FullName}
}

// toUserDetail incluye el nombre del cliente y los roles efectivos; no depende del usuario que consulta.
func toUserDetail(u *entity.User, customer *entity.Customer) dto.UserDetail {
	return dto.UserDetail{
		ID:        u.ID,
		Customer:  dto.CustomerSummary{ID: customer.ID, Name: customer.Name},
		Name:      u.FullName,
		Email:     u.Email,
		Roles:     u.EffectiveRoles(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func userPath(customerID, userID string) string {
	return fmt.Sprintf("/api/customers/%s/users/%s", customerID, userID)
}

func usersPath(customerID string) string {
	return fmt.Sprintf("/api/customers/%s/users", customerID)
}

// withListLinks copia items y agrega los enlaces visibles para viewer. Los valores en caché
// son compartidos entre usuarios y no se modifican.
func withListLinks(items []dto.UserListItem, customerID string, viewer *entity.User) []dto.UserListItem {
	out := slices.Clone(items)
	admin := viewer.HasRole(entity.RoleAdmin)
	for i := range out {
		path := userPath(customerID, out[i].ID)
		links := &dto.Links{Self: &dto.Link{Href: path}}
		if admin {
			links.Update = &dto.Link{Href: path}
			links.Delete = &dto.Link{Href: path}
			links.Create = &dto.Link{Href: usersPath(customerID)}
		}
		out[i].Links = links
	}
	return out
}

// withDetailLinks devuelve una copia de d con los enlaces de administración si viewer es ADMIN.
func withDetailLinks(d dto.UserDetail, viewer *entity.User) dto.UserDetail {
	d.Roles = slices.Clone(d.Roles)
	d.Links = nil
	if viewer.HasRole(entity.RoleAdmin) {
		path := userPath(d.Customer.ID, d.ID)
		d.Links = &dto.Links{Update: &dto.Link{Href: path}, Delete: &dto.Link{Href: path}}
	}
	return d
}
