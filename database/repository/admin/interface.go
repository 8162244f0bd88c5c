// File: database/repository/admin/interface.go
package adminRepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
)

// ErrNotFound is returned when no admin matches the query.
var ErrNotFound = errors.New("admin not found")

type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetByID(ctx context.Context, id string) (*models.Admin, error)
}

type pgAdminRepo struct {
	pool *pgxpool.Pool
}

// NewPgAdminRepo constructs a new Postgres AdminRepository.
func NewPgAdminRepo(pool *pgxpool.Pool) AdminRepository {
	return &pgAdminRepo{pool: pool}
}
