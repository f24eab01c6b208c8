package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/bilemo-api/internal/application/dto"
	"github.com/jhoicas/bilemo-api/internal/application/validation"
	"github.com/jhoicas/bilemo-api/internal/domain"
	"github.com/jhoicas/bilemo-api/internal/domain/repository"
	"github.com/jhoicas/bilemo-api/pkg/jwt"
)

// TokenConfig configuración para la emisión de credenciales.
type TokenConfig struct {
	Secret     string
	TTLMinutes int
	Issuer     string
}

// AuthUseCase emite credenciales bearer a partir de email y contraseña.
type AuthUseCase struct {
	users repository.UserRepository
	cfg   TokenConfig
	clock clock.Clock
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, cfg TokenConfig, clk clock.Clock) *AuthUseCase {
	if clk == nil {
		clk = clock.New()
	}
	return &AuthUseCase{users: users, cfg: cfg, clock: clk}
}

// IssueToken verifica email/password, genera una credencial firmada y la guarda en el usuario.
// Email desconocido o contraseña incorrecta devuelven ErrUnauthorized.
func (uc *AuthUseCase) IssueToken(ctx context.Context, in dto.TokenRequest) (*dto.TokenResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	ttl := time.Duration(uc.cfg.TTLMinutes) * time.Minute
	token, expiresAt, err := jwt.Generate(uc.cfg.Secret, user.ID, user.CustomerID, uc.cfg.Issuer, uc.clock.Now(), ttl)
	if err != nil {
		return nil, fmt.Errorf("generar credencial: %w", err)
	}
	if err := uc.users.UpdateToken(ctx, user.ID, token, &expiresAt); err != nil {
		return nil, fmt.Errorf("guardar credencial: %w", err)
	}
	return &dto.TokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}
