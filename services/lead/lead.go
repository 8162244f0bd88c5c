// File: services/lead/lead.go
package lead

import (
	"context"
	"errors"

	"go.uber.org/zap"

	leadRepo "github.com/clicksalesmedia/clicksalesmedia-sub003/database/repository/lead"
	legacyRepo "github.com/clicksalesmedia/clicksalesmedia-sub003/database/repository/legacy"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
)

var knownLeadStatuses = map[string]bool{
	models.LeadStatusNew:       true,
	models.LeadStatusContacted: true,
	models.LeadStatusQualified: true,
	models.LeadStatusClosed:    true,
}

func (s *DefaultLeadService) Submit(ctx context.Context, req models.LeadRequest) (*models.Lead, error) {
	lead := &models.Lead{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Message: req.Message,
		Source:  req.Source,
		Status:  models.LeadStatusNew,
	}
	if err := s.Repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	s.logger().Info("lead captured",
		zap.String("id", lead.ID),
		zap.String("source", lead.Source),
	)
	return lead, nil
}

func (s *DefaultLeadService) Get(ctx context.Context, id string) (*models.Lead, error) {
	lead, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, leadRepo.ErrNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return lead, nil
}

func (s *DefaultLeadService) List(ctx context.Context, status string, limit, offset int) ([]models.Lead, error) {
	if status != "" && !knownLeadStatuses[status] {
		return nil, ErrInvalidLeadStatus
	}
	return s.Repo.List(ctx, status, limit, offset)
}

func (s *DefaultLeadService) UpdateStatus(ctx context.Context, id, status string) (*models.Lead, error) {
	if !knownLeadStatuses[status] {
		return nil, ErrInvalidLeadStatus
	}
	if err := s.Repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, leadRepo.ErrNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *DefaultLeadService) Delete(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, leadRepo.ErrNotFound) {
		return ErrLeadNotFound
	}
	return err
}

func (s *DefaultLeadService) SubmitLegacy(ctx context.Context, form string, lead models.LegacyLead) (*models.LegacyLead, error) {
	if err := s.Legacy.Insert(ctx, form, &lead); err != nil {
		if errors.Is(err, legacyRepo.ErrUnknownForm) {
			return nil, ErrUnknownForm
		}
		return nil, err
	}

	s.logger().Info("legacy lead captured",
		zap.String("form", form),
		zap.String("id", lead.ID),
	)
	return &lead, nil
}

func (s *DefaultLeadService) ListLegacy(ctx context.Context, form string, limit int) ([]models.LegacyLead, error) {
	leads, err := s.Legacy.ListByForm(ctx, form, limit)
	if err != nil {
		if errors.Is(err, legacyRepo.ErrUnknownForm) {
			return nil, ErrUnknownForm
		}
		return nil, err
	}
	return leads, nil
}
