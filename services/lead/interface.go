// File: services/lead/interface.go
package lead

import (
	"context"
	"errors"

	"go.uber.org/zap"

	leadRepo "github.com/clicksalesmedia/clicksalesmedia-sub003/database/repository/lead"
	legacyRepo "github.com/clicksalesmedia/clicksalesmedia-sub003/database/repository/legacy"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
)

var (
	// ErrLeadNotFound indicates no lead exists with the given ID.
	ErrLeadNotFound = errors.New("lead not found")
	// ErrInvalidLeadStatus indicates an unknown pipeline status value.
	ErrInvalidLeadStatus = errors.New("unknown lead status")
	// ErrUnknownForm indicates a legacy form name other than the two kept ones.
	ErrUnknownForm = errors.New("unknown legacy form")
)

// LeadService is the contact pipeline: site submissions in, admin
// triage out. The two legacy forms write to the Mongo store.
type LeadService interface {
	Submit(ctx context.Context, req models.LeadRequest) (*models.Lead, error)
	Get(ctx context.Context, id string) (*models.Lead, error)
	List(ctx context.Context, status string, limit, offset int) ([]models.Lead, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Lead, error)
	Delete(ctx context.Context, id string) error

	SubmitLegacy(ctx context.Context, form string, lead models.LegacyLead) (*models.LegacyLead, error)
	ListLegacy(ctx context.Context, form string, limit int) ([]models.LegacyLead, error)
}

// DefaultLeadService is the production implementation.
type DefaultLeadService struct {
	Repo   leadRepo.LeadRepository
	Legacy legacyRepo.LegacyLeadRepository
	Logger *zap.Logger
}

func (s *DefaultLeadService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}
