package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/benbjohnson/clock"

	"github.com/jhoicas/bilemo-api/internal/domain"
	"github.com/jhoicas/bilemo-api/internal/domain/entity"
	"github.com/jhoicas/bilemo-api/internal/domain/repository"
	"github.com/jhoicas/bilemo-api/pkg/logger"
)

// CredentialResolver resuelve una credencial bearer opaca al usuario que la posee.
// El token no se parsea: se busca por valor almacenado y se valida su vencimiento.
type CredentialResolver struct {
	users        repository.UserRepository
	clock        clock.Clock
	clearExpired bool
	log          *logger.Logger
}

// NewCredentialResolver construye el resolver. Con clearExpired, una credencial vencida se borra
// del usuario al detectarla.
func NewCredentialResolver(users repository.UserRepository, clk clock.Clock, clearExpired bool, log *logger.Logger) *CredentialResolver {
	if clk == nil {
		clk = clock.New()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CredentialResolver{users: users, clock: clk, clearExpired: clearExpired, log: log}
}

// Resolve devuelve el usuario dueño de token. Errores: ErrTokenMissing, ErrTokenInvalid,
// ErrTokenExpired, o un error de almacenamiento envuelto.
func (r *CredentialResolver) Resolve(ctx context.Context, token string) (*entity.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ErrTokenMissing
	}
	user, err := r.users.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("resolver credencial: %w", err)
	}
	if user == nil {
		return nil, domain.ErrTokenInvalid
	}
	if user.TokenExpiredAt(r.clock.Now()) {
		if r.clearExpired {
			// El fallo al limpiar nunca reemplaza al ErrTokenExpired.
			if err := r.users.UpdateToken(ctx, user.ID, "", nil); err != nil {
				r.log.Warn().Err(err).Str("user_id", user.ID).Msg("no se pudo borrar la credencial vencida")
			}
		}
		return nil, domain.ErrTokenExpired
	}
	return user, nil
}
