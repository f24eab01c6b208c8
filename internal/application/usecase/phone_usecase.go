package usecase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/bilemo-api/internal/application/dto"
	"github.com/jhoicas/bilemo-api/internal/domain"
	"github.com/jhoicas/bilemo-api/internal/domain/repository"
)

// PhoneUseCase lectura paginada y detalle del catálogo de teléfonos.
type PhoneUseCase struct {
	p       *Pipeline
	phones  repository.PhoneRepository
	perPage int
}

// NewPhoneUseCase construye el caso de uso.
func NewPhoneUseCase(p *Pipeline, phones repository.PhoneRepository, perPage int) *PhoneUseCase {
	return &PhoneUseCase{p: p, phones: phones, perPage: perPage}
}

// List devuelve la página rawPage del catálogo.
func (uc *PhoneUseCase) List(ctx context.Context, token, rawPage string) *dto.Envelope {
	const op = "phones.list"
	env := dto.NewEnvelope(map[string]any{"page": rawPage})

	if _, err := uc.p.Authenticate(ctx, token); err != nil {
		return uc.p.Fail(env, op, err)
	}
	page, err := ParsePage(rawPage)
	if err != nil {
		return uc.p.Fail(env, op, err)
	}
	env.Arguments["page"] = page

	items, err := cached(ctx, uc.p, allPhonesEntry(page), func(ctx context.Context) ([]dto.PhoneListItem, error) {
		off, ok := offset(page, uc.perPage)
		if !ok {
			return []dto.PhoneListItem{}, nil
		}
		phones, err := uc.phones.List(ctx, uc.perPage, off)
		if err != nil {
			return nil, fmt.Errorf("listar teléfonos: %w", err)
		}
		out := make([]dto.PhoneListItem, 0, len(phones))
		for _, ph := range phones {
			out = append(out, toPhoneListItem(ph))
		}
		return out, nil
	})
	if err != nil {
		return uc.p.Fail(env, op, err)
	}
	if len(items) == 0 {
		return uc.p.Fail(env, op, domain.ErrNoPhones)
	}
	return env.Succeed(http.StatusOK, items)
}

// Get devuelve el detalle del teléfono phoneID con la marca resuelta.
func (uc *PhoneUseCase) Get(ctx context.Context, token, phoneID string) *dto.Envelope {
	const op = "phones.get"
	env := dto.NewEnvelope(map[string]any{"phone": phoneID})

	if _, err := uc.p.Authenticate(ctx, token); err != nil {
		return uc.p.Fail(env, op, err)
	}
	phone, err := uc.phones.GetByID(ctx, phoneID)
	if err != nil {
		return uc.p.Fail(env, op, fmt.Errorf("cargar teléfono: %w", err))
	}
	if phone == nil {
		return uc.p.Fail(env, op, domain.ErrPhoneNotFound)
	}

	detail, err := cached(ctx, uc.p, phoneDetailsEntry(phone.ID), func(context.Context) (dto.PhoneDetail, error) {
		return toPhoneDetail(phone), nil
	})
	if err != nil {
		return uc.p.Fail(env, op, err)
	}
	return env.Succeed(http.StatusOK, detail)
}
