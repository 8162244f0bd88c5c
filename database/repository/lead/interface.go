// File: database/repository/lead/interface.go
package leadRepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
)

// ErrNotFound is returned when no lead matches the query.
var ErrNotFound = errors.New("lead not found")

type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	GetByID(ctx context.Context, id string) (*models.Lead, error)
	List(ctx context.Context, status string, limit, offset int) ([]models.Lead, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type pgLeadRepo struct {
	pool *pgxpool.Pool
}

// NewPgLeadRepo constructs a new Postgres LeadRepository.
func NewPgLeadRepo(pool *pgxpool.Pool) LeadRepository {
	return &pgLeadRepo{pool: pool}
}
