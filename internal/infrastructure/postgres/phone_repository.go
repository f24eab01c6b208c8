package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/bilemo-api/internal/domain"
	"github.com/jhoicas/bilemo-api/internal/domain/entity"
	"github.com/jhoicas/bilemo-api/internal/domain/repository"
)

var _ repository.PhoneRepository = (*PhoneRepo)(nil)

const phoneSelect = `
	SELECT p.id, p.name, b.id, b.name, p.color, p.dual_sim, p.memory, p.description,
	       p.selling_price, p.created_at, p.updated_at
	FROM phones p JOIN brands b ON b.id = p.brand_id`

// PhoneRepo implementación del puerto PhoneRepository sobre PostgreSQL. La marca se carga con JOIN.
type PhoneRepo struct {
	pool *pgxpool.Pool
}

// NewPhoneRepository construye el adaptador.
func NewPhoneRepository(pool *pgxpool.Pool) *PhoneRepo {
	return &PhoneRepo{pool: pool}
}

// CreateBrand persiste una marca.
func (r *PhoneRepo) CreateBrand(ctx context.Context, b *entity.Brand) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO brands (id, name) VALUES ($1, $2)`, b.ID, b.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert brand: %w", err)
	}
	return nil
}

// Create persiste un teléfono.
func (r *PhoneRepo) Create(ctx context.Context, p *entity.Phone) error {
	query := `
		INSERT INTO phones (id, brand_id, name, color, dual_sim, memory, description, selling_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Brand.ID, p.Name, p.Color, p.DualSim, p.MemoryGB, p.Description, p.SellingPrice,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert phone: %w", err)
	}
	return nil
}

// GetByID obtiene un teléfono con su marca.
func (r *PhoneRepo) GetByID(ctx context.Context, id string) (*entity.Phone, error) {
	p, err := scanPhone(r.pool.QueryRow(ctx, phoneSelect+` WHERE p.id::text = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get phone: %w", err)
	}
	return p, nil
}

// List lista el catálogo por orden de alta.
func (r *PhoneRepo) List(ctx context.Context, limit, offset int) ([]*entity.Phone, error) {
	lim, off := limitOffset(limit, offset)
	rows, err := r.pool.Query(ctx, phoneSelect+` ORDER BY p.created_at, p.id LIMIT $1 OFFSET $2`, lim, off)
	if err != nil {
		return nil, fmt.Errorf("list phones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Phone
	for rows.Next() {
		p, err := scanPhone(rows)
		if err != nil {
			return nil, fmt.Errorf("scan phone: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanPhone(row pgx.Row) (*entity.Phone, error) {
	var p entity.Phone
	err := row.Scan(
		&p.ID, &p.Name, &p.Brand.ID, &p.Brand.Name, &p.Color, &p.DualSim, &p.MemoryGB, &p.Description,
		&p.SellingPrice, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
