// File: database/repository/legacy/interface.go
package legacyRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/config"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
)

// The two legacy lead forms and their collections.
const (
	FormPPCAudit = "ppc-audit"
	FormSEOAudit = "seo-audit"

	collPPCAudit = "ppc_audit_leads"
	collSEOAudit = "seo_audit_leads"
)

// ErrUnknownForm is returned for a form name other than the two legacy ones.
var ErrUnknownForm = errors.New("unknown legacy form")

type LegacyLeadRepository interface {
	Insert(ctx context.Context, form string, lead *models.LegacyLead) error
	ListByForm(ctx context.Context, form string, limit int) ([]models.LegacyLead, error)
}

type mongoLegacyLeadRepo struct {
	ppc *mongo.Collection
	seo *mongo.Collection
}

// NewMongoLegacyLeadRepo constructs the MongoDB-backed legacy lead store.
func NewMongoLegacyLeadRepo(client *mongo.Client) LegacyLeadRepository {
	db := client.Database(config.AppConfig.MongoDB)
	return &mongoLegacyLeadRepo{
		ppc: db.Collection(collPPCAudit),
		seo: db.Collection(collSEOAudit),
	}
}

func (r *mongoLegacyLeadRepo) collection(form string) (*mongo.Collection, error) {
	switch form {
	case FormPPCAudit:
		return r.ppc, nil
	case FormSEOAudit:
		return r.seo, nil
	default:
		return nil, ErrUnknownForm
	}
}
