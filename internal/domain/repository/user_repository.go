package repository

import (
	"context"
	"time"

	"github.com/jhoicas/bilemo-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay coincidencia.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByIDAndCustomer solo encuentra al usuario si pertenece a customerID.
	GetByIDAndCustomer(ctx context.Context, id, customerID string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByToken(ctx context.Context, token string) (*entity.User, error)
	// ExistsByFullName y ExistsByEmail ignoran al usuario excludeID (vacío = ninguno).
	ExistsByFullName(ctx context.Context, fullName, excludeID string) (bool, error)
	ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error)
	ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*entity.User, error)
	CountByCustomer(ctx context.Context, customerID string) (int, error)
	Update(ctx context.Context, user *entity.User) error
	// UpdateToken reemplaza la credencial; token vacío y validity nil la eliminan.
	UpdateToken(ctx context.Context, id, token string, validity *time.Time) error
	Delete(ctx context.Context, id string) error
}
