package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/benbjohnson/clock"

	"github.com/jhoicas/bilemo-api/internal/application/auth"
	"github.com/jhoicas/bilemo-api/internal/application/dto"
	"github.com/jhoicas/bilemo-api/internal/application/ports"
	"github.com/jhoicas/bilemo-api/internal/domain"
	"github.com/jhoicas/bilemo-api/internal/domain/entity"
	"github.com/jhoicas/bilemo-api/internal/domain/repository"
	"github.com/jhoicas/bilemo-api/pkg/logger"
)

// Pipeline reúne los pasos comunes de todas las operaciones: resolver la credencial, autorizar
// contra el cliente de la ruta, leer/escribir a través de la caché y construir el envelope.
// Se inyecta en cada caso de uso; no guarda estado por petición.
type Pipeline struct {
	resolver  *auth.CredentialResolver
	customers repository.CustomerRepository
	cache     ports.TagAwareCache
	clock     clock.Clock
	log       *logger.Logger
}

// NewPipeline construye el pipeline compartido.
func NewPipeline(resolver *auth.CredentialResolver, customers repository.CustomerRepository, cache ports.TagAwareCache, clk clock.Clock, log *logger.Logger) *Pipeline {
	if clk == nil {
		clk = clock.New()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Pipeline{resolver: resolver, customers: customers, cache: cache, clock: clk, log: log}
}

// Authenticate resuelve el usuario autenticado a partir de la credencial bearer.
func (p *Pipeline) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	return p.resolver.Resolve(ctx, token)
}

// AuthorizeCustomer carga el cliente de la ruta y verifica pertenencia y rol de principal.
func (p *Pipeline) AuthorizeCustomer(ctx context.Context, customerID string, principal *entity.User, role string) (*entity.Customer, error) {
	customer, err := p.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("cargar cliente: %w", err)
	}
	if err := auth.Authorize(customer, principal, role); err != nil {
		return nil, err
	}
	return customer, nil
}

// Fail registra err en env con su código HTTP. Los errores de almacenamiento se registran en el
// log con su detalle; el cliente solo recibe el mensaje genérico.
func (p *Pipeline) Fail(env *dto.Envelope, op string, err error) *dto.Envelope {
	code := StatusFor(err)
	if code == http.StatusInternalServerError {
		p.log.Warn().Err(err).Str("op", op).Msg("error de almacenamiento")
	}
	return env.Fail(code, Messages(err)...)
}

// invalidate elimina las etiquetas indicadas. Se llama solo después de una escritura confirmada;
// un fallo de la caché no revierte la operación.
func (p *Pipeline) invalidate(ctx context.Context, op string, tags ...string) {
	if err := p.cache.Invalidate(ctx, tags...); err != nil {
		p.log.Warn().Err(err).Str("op", op).Strs("tags", tags).Msg("no se pudo invalidar la caché")
	}
}

func (p *Pipeline) store(ctx context.Context, op string, e cacheEntry, value any) {
	if err := p.cache.Set(ctx, e.key, e.tags, value); err != nil {
		p.log.Warn().Err(err).Str("op", op).Str("key", e.key).Msg("no se pudo escribir en la caché")
	}
}

// cached lee e de la caché o la calcula con compute.
func cached[T any](ctx context.Context, p *Pipeline, e cacheEntry, compute func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	v, err := p.cache.GetOrCompute(ctx, e.key, e.tags, func(ctx context.Context) (any, error) {
		p.log.Debug().Str("key", e.key).Msg("cache miss")
		out, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("caché: tipo %T inesperado en %q", v, e.key)
	}
	return out, nil
}

// ParsePage interpreta el parámetro page. Ausente equivale a 1; no entero o menor que 1
// devuelve ErrInvalidPageNumber.
func ParsePage(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, domain.ErrInvalidPageNumber
	}
	return page, nil
}

// offset devuelve el desplazamiento de page con perPage elementos por página. ok=false si el
// desplazamiento no cabe en un int: la página existe como número pero está vacía.
func offset(page, perPage int) (int, bool) {
	if perPage > 0 && page-1 > math.MaxInt/perPage {
		return 0, false
	}
	return (page - 1) * perPage, true
}

var statusBySentinel = []struct {
	err  error
	code int
}{
	{domain.ErrTokenMissing, http.StatusUnauthorized},
	{domain.ErrTokenInvalid, http.StatusUnauthorized},
	{domain.ErrTokenExpired, http.StatusUnauthorized},
	{domain.ErrUnauthorized, http.StatusUnauthorized},
	{domain.ErrTenantNotFound, http.StatusNotFound},
	{domain.ErrCrossTenant, http.StatusForbidden},
	{domain.ErrInsufficientRole, http.StatusForbidden},
	{domain.ErrDataRequired, http.StatusBadRequest},
	{domain.ErrMalformedPayload, http.StatusBadRequest},
	{domain.ErrInvalidPageNumber, http.StatusBadRequest},
	{domain.ErrUserNotFound, http.StatusNotFound},
	{domain.ErrPhoneNotFound, http.StatusNotFound},
	{domain.ErrNoPhones, http.StatusNoContent},
	{domain.ErrNoUsers, http.StatusNoContent},
}

// StatusFor traduce un error del pipeline a su código HTTP. Cualquier error no clasificado
// (incluido ErrDuplicate de una carrera de unicidad) es un error de almacenamiento: 500.
func StatusFor(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	for _, s := range statusBySentinel {
		if errors.Is(err, s.err) {
			return s.code
		}
	}
	return http.StatusInternalServerError
}

// Messages devuelve los mensajes visibles para el cliente. Un error de almacenamiento nunca
// expone su detalle.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return append([]string(nil), verr.Messages...)
	}
	for _, s := range statusBySentinel {
		if errors.Is(err, s.err) {
			return []string{s.err.Error()}
		}
	}
	return []string{domain.ErrStorage.Error()}
}
