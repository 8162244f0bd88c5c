// File: database/repository/legacy/leads.go
package legacyRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
)

// Insert appends a submission to the form's collection. The legacy forms
// are append-only; there is no update path.
func (r *mongoLegacyLeadRepo) Insert(ctx context.Context, form string, lead *models.LegacyLead) error {
	coll, err := r.collection(form)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}

	if _, err := coll.InsertOne(ctx, lead); err != nil {
		return fmt.Errorf("insert legacy lead: %w", err)
	}
	return nil
}

// ListByForm returns the newest submissions for one of the legacy forms.
func (r *mongoLegacyLeadRepo) ListByForm(ctx context.Context, form string, limit int) ([]models.LegacyLead, error) {
	coll, err := r.collection(form)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if limit <= 0 {
		limit = 100
	}
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(int64(limit))

	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list legacy leads: %w", err)
	}
	defer cursor.Close(ctx)

	var leads []models.LegacyLead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, fmt.Errorf("decode legacy leads: %w", err)
	}
	return leads, nil
}
