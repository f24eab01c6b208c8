package repository

import (
	"context"

	"github.com/jhoicas/bilemo-api/internal/domain/entity"
)

// PhoneRepository define el puerto de lectura del catálogo. Create y CreateBrand solo
// los usa la carga de datos de demostración.
type PhoneRepository interface {
	CreateBrand(ctx context.Context, brand *entity.Brand) error
	Create(ctx context.Context, phone *entity.Phone) error
	// GetByID devuelve el teléfono con su marca cargada.
	GetByID(ctx context.Context, id string) (*entity.Phone, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Phone, error)
}
