package usecase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/bilemo-api/internal/application/dto"
	"github.com/jhoicas/bilemo-api/internal/application/validation"
	"github.com/jhoicas/bilemo-api/internal/domain"
	"github.com/jhoicas/bilemo-api/internal/domain/entity"
	"github.com/jhoicas/bilemo-api/internal/domain/repository"
)

// Mensajes de confirmación de mutaciones.
const (
	MsgUserUpdated = "el usuario ha sido actualizado"
	MsgUserDeleted = "el usuario ha sido eliminado"
)

// UserUseCase gestión de los usuarios de un cliente. Lecturas con el rol base; altas, cambios y
// bajas solo para ADMIN del mismo cliente.
type UserUseCase struct {
	p         *Pipeline
	users     repository.UserRepository
	validator *validation.UserValidator
	perPage   int
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(p *Pipeline, users repository.UserRepository, validator *validation.UserValidator, perPage int) *UserUseCase {
	return &UserUseCase{p: p, users: users, validator: validator, perPage: perPage}
}

// List devuelve la página rawPage de usuarios del cliente customerID.
func (uc *UserUseCase) List(ctx context.Context, token, customerID, rawPage string) *dto.Envelope {
	const op = "users.list"
	env := dto.NewEnvelope(map[string]any{"customer": customerID, "page": rawPage})

	principal, err := uc.p.Authenticate(ctx, token)
	if err != nil {
		return uc.p.Fail(env, op, err)
	}
	customer, err := uc.p.AuthorizeCustomer(ctx, customerID, principal, entity.RoleUser)
	if err != nil {
		return uc.p.Fail(env, op, err)
	}
	page, err := ParsePage(rawPage)
	if err != nil {
		return uc.p.Fail(env, op, err)
	}
	env.Arguments["page"] = page

	items, err := cached(ctx, uc.p, allUsersEntry(customer.ID, page), func(ctx context.Context) ([]dto.UserListItem, error) {
		off, ok := offset(page, uc.perPage)
		if !ok {
			return []dto.UserListItem{}, nil
		}
		users, err := uc.users.ListByCustomer(ctx, customer.ID, uc.perPage, off)
		if err != nil {
			return nil, fmt.Errorf("listar usuarios: %w", err)
		}
		out := make([]dto.UserListItem, 0, len(users))
		for _, u := range users {
			out = append(out, toUserListItem(u))
		}
		return out, nil
	})
	if err != nil {
		return uc.p.Fail(env, op, err)
	}
	if len(items) == 0 {
		return uc.p.Fail(env, op, domain.ErrNoUsers)
	}
	return env.Succeed(http.StatusOK, withListLinks(items, customer.ID, principal))
}

// Get devuelve el detalle del usuario userID del cliente customerID.
func (uc *UserUseCase) Get(ctx context.Context, token, customerID, userID string) *dto.Envelope {
	const op = "users.get"
	env := dto.NewEnvelope(map[string]any{"customer": customerID, "user": userID})

	principal, err := uc.p.Authenticate(ctx, token)
	if err != nil {
		return uc.p.Fail(env, op, err)
	}
	customer, err := uc.p.AuthorizeCustomer(ctx, customerID, principal, entity.RoleUser)
	if err != nil {
		return uc.p.Fail(env, op, err)
	}
	target, err := uc.target(ctx, customer.ID, userID)
	if err != nil {
		return uc.p.Fail(env, op, err)
	}

	detail, err := cached(ctx, uc.p, userDetailsEntry(customer.ID, target.ID), func(context.Context) (dto.UserDetail, error) {
		return toUserDetail(target, customer), nil
	})
	if err != nil {
		return uc.p.Fail(env, op, err)
	}
	return env.Succeed(http.StatusOK, withDetailLinks(detail, principal))
}

// Create da de alta un usuario en customerID a partir del cuerpo JSON raw.
func (uc *UserUseCase) Create(ctx context.Context, token, customerID string, raw []byte) *dto.Envelope {
	const op = "users.create"
	env := dto.NewEnvelope(map[string]any{"customer": customerID})

	principal, err := uc.p.Authenticate(ctx, token)
	if err != nil {
		return uc.p.Fail(env, op, err)
	}
	customer, err := uc.p.AuthorizeCustomer(ctx, customerID, principal, entity.RoleAdmin)
	if err != nil {
		return uc.p.Fail(env, op, err)
	}
	payload, err := validation.DecodeUserPayload(raw)
	if err != nil {
		return uc.p.Fail(env, op, err)
	}
	if err := uc.validator.ValidateCreate(ctx, payload); err != nil {
		return uc.p.Fail(env, op, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return uc.p.Fail(env, op, fmt.Errorf("hash de contraseña: %w", err))
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		CustomerID:   customer.ID,
		FullName:     *payload.Name,
		Email:        *payload.Email,
		PasswordHash: string(hash),
		Roles:        entity.NormalizeRoles(payload.Roles),
		CreatedAt:    uc.p.clock.Now(),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return uc.p.Fail(env, op, fmt.Errorf("crear usuario: %w", err))
	}

	detail := toUserDetail(user, customer)
	uc.p.store(ctx, op, userDetailsEntry(customer.ID, user.ID), detail)
	uc.p.invalidate(ctx, op, allUsersTag(customer.ID))
	env.Arguments["user"] = user.ID
	return env.Succeed(http.StatusCreated, withDetailLinks(detail, principal))
}

// Update modifica name, email y/o roles del usuario userID. Solo se tocan los campos presentes
// en raw.
func (uc *UserUseCase) Update(ctx context.Context, token, customerID, userID string, raw []byte) *dto.Envelope {
	const op = "users.update"
	env := dto.NewEnvelope(map[string]any{"customer": customerID, "user": userID})

	principal, err := uc.p.Authenticate(ctx, token)
	if err != nil {
		return uc.p.Fail(env, op, err)
	}
	customer, err := uc.p.AuthorizeCustomer(ctx, customerID, principal, entity.RoleAdmin)
	if err != nil {
		return uc.p.Fail(env, op, err)
	}
	target, err := uc.target(ctx, customer.ID, userID)
	if err != nil {
		return uc.p.Fail(env, op, err)
	}
	payload, err := validation.DecodeUserPayload(raw)
	if err != nil {
		return uc.p.Fail(env, op, err)
	}
	if err := uc.validator.ValidateUpdate(ctx, target.ID, payload); err != nil {
		return uc.p.Fail(env, op, err)
	}

	// El listado solo muestra el nombre: únicamente un cambio de nombre lo invalida.
	nameChanged := payload.Name != nil && *payload.Name != target.FullName
	if payload.Name != nil {
		target.FullName = *payload.Name
	}
	if payload.Email != nil {
		target.Email = *payload.Email
	}
	if payload.Roles != nil {
		target.Roles = entity.NormalizeRoles(payload.Roles)
	}
	now := uc.p.clock.Now()
	target.UpdatedAt = &now
	if err := uc.users.Update(ctx, target); err != nil {
		return uc.p.Fail(env, op, fmt.Errorf("actualizar usuario: %w", err))
	}

	entry := userDetailsEntry(customer.ID, target.ID)
	tags := entry.tags
	if nameChanged {
		tags = append([]string{allUsersTag(customer.ID)}, tags...)
	}
	uc.p.invalidate(ctx, op, tags...)
	detail := toUserDetail(target, customer)
	uc.p.store(ctx, op, entry, detail)

	env.Info = MsgUserUpdated
	return env.Succeed(http.StatusOK, withDetailLinks(detail, principal))
}

// Delete elimina el usuario userID del cliente customerID.
func (uc *UserUseCase) Delete(ctx context.Context, token, customerID, userID string) *dto.Envelope {
	const op = "users.delete"
	env := dto.NewEnvelope(map[string]any{"customer": customerID, "user": userID})

	principal, err := uc.p.Authenticate(ctx, token)
	if err != nil {
		return uc.p.Fail(env, op, err)
	}
	customer, err := uc.p.AuthorizeCustomer(ctx, customerID, principal, entity.RoleAdmin)
	if err != nil {
		return uc.p.Fail(env, op, err)
	}
	target, err := uc.target(ctx, customer.ID, userID)
	if err != nil {
		return uc.p.Fail(env, op, err)
	}
	if err := uc.users.Delete(ctx, target.ID); err != nil {
		return uc.p.Fail(env, op, fmt.Errorf("eliminar usuario: %w", err))
	}

	uc.p.invalidate(ctx, op, userDetailsEntry(customer.ID, target.ID).key, allUsersTag(customer.ID))
	env.Info = MsgUserDeleted
	return env.Succeed(http.StatusNoContent, nil)
}

// target carga el usuario userID solo si pertenece a customerID. Un usuario de otro cliente
// se reporta igual que uno inexistente.
func (uc *UserUseCase) target(ctx context.Context, customerID, userID string) (*entity.User, error) {
	u, err := uc.users.GetByIDAndCustomer(ctx, userID, customerID)
	if err != nil {
		return nil, fmt.Errorf("cargar usuario: %w", err)
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}
