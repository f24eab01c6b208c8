package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/bilemo-api/internal/domain"
	"github.com/jhoicas/bilemo-api/internal/domain/entity"
	"github.com/jhoicas/bilemo-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, customer_id, full_name, email, password_hash, roles, token, token_validity, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.CustomerID, user.FullName, user.Email, user.PasswordHash, rolesOrEmpty(user.Roles),
		nullIfEmpty(user.Token), user.TokenValidity, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, "get user by id", `SELECT `+userColumns+` FROM users WHERE id::text = $1`, id)
}

// GetByIDAndCustomer obtiene un usuario solo si pertenece al cliente.
func (r *UserRepo) GetByIDAndCustomer(ctx context.Context, id, customerID string) (*entity.User, error) {
	return r.findOne(ctx, "get user by id and customer",
		`SELECT `+userColumns+` FROM users WHERE id::text = $1 AND customer_id::text = $2`, id, customerID)
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, "get user by email", `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// GetByToken obtiene el usuario dueño de la credencial.
func (r *UserRepo) GetByToken(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, nil
	}
	return r.findOne(ctx, "get user by token", `SELECT `+userColumns+` FROM users WHERE token = $1`, token)
}

// ExistsByFullName indica si otro usuario ya usa fullName.
func (r *UserRepo) ExistsByFullName(ctx context.Context, fullName, excludeID string) (bool, error) {
	return r.exists(ctx, "exists user by name",
		`SELECT EXISTS (SELECT 1 FROM users WHERE full_name = $1 AND id::text <> $2)`, fullName, excludeID)
}

// ExistsByEmail indica si otro usuario ya usa email.
func (r *UserRepo) ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error) {
	return r.exists(ctx, "exists user by email",
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id::text <> $2)`, email, excludeID)
}

// ListByCustomer lista usuarios de un cliente por orden de alta.
func (r *UserRepo) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*entity.User, error) {
	lim, off := limitOffset(limit, offset)
	query := `
		SELECT ` + userColumns + `
		FROM users WHERE customer_id::text = $1
		ORDER BY created_at, id LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, customerID, lim, off)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// CountByCustomer cuenta los usuarios de un cliente.
func (r *UserRepo) CountByCustomer(ctx context.Context, customerID string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE customer_id::text = $1`, customerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// Update actualiza name, email, roles y fecha de modificación.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET full_name = $2, email = $3, roles = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, user.ID, user.FullName, user.Email, rolesOrEmpty(user.Roles), user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateToken reemplaza o elimina la credencial del usuario.
func (r *UserRepo) UpdateToken(ctx context.Context, id, token string, validity *time.Time) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET token = $2, token_validity = $3 WHERE id = $1`,
		id, nullIfEmpty(token), validity)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update user token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UserRepo) findOne(ctx context.Context, op, query string, args ...any) (*entity.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

func (r *UserRepo) exists(ctx context.Context, op, query string, args ...any) (bool, error) {
	var ok bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&ok); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return ok, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var token *string
	if err := row.Scan(
		&u.ID, &u.CustomerID, &u.FullName, &u.Email, &u.PasswordHash, &u.Roles,
		&token, &u.TokenValidity, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if token != nil {
		u.Token = *token
	}
	return &u, nil
}

func rolesOrEmpty(roles []string) []string {
	if roles == nil {
		return []string{}
	}
	return roles
}
