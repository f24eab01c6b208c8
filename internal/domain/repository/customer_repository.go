package repository

import (
	"context"

	"github.com/jhoicas/bilemo-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer (tenant).
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Customer, error)
}
