// File: database/repository/admin/crud.go
package adminRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
)

func (r *pgAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}

	query := `
		INSERT INTO admins (id, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	err := r.pool.QueryRow(ctx, query, admin.ID, admin.Email, admin.PasswordHash).
		Scan(&admin.CreatedAt)
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

func (r *pgAdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return r.getBy(ctx, "email", email)
}

func (r *pgAdminRepo) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	return r.getBy(ctx, "id", id)
}

func (r *pgAdminRepo) getBy(ctx context.Context, column, value string) (*models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := fmt.Sprintf(
		`SELECT id, email, password_hash, created_at FROM admins WHERE %s = $1`, column)

	var a models.Admin
	err := r.pool.QueryRow(ctx, query, value).Scan(
		&a.ID,
		&a.Email,
		&a.PasswordHash,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &a, nil
}
