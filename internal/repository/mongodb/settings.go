package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/1005Studio/1005ManagmentV02/internal/domain/models"
	"github.com/1005Studio/1005ManagmentV02/internal/repository"
)

const activePeriodID = "activePeriod"

type periodDocument struct {
	ID    string `bson:"_id"`
	Year  int    `bson:"year"`
	Month int    `bson:"month"`
}

// Settings persists singleton documents in the settings collection.
type Settings struct {
	coll *mongo.Collection
}

// ActivePeriod returns the stored active period, or repository.ErrNotFound before the first SetActivePeriod.
func (s *Settings) ActivePeriod(ctx context.Context) (models.Period, error) {
	var doc periodDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": activePeriodID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Period{}, fmt.Errorf("active period: %w", repository.ErrNotFound)
	}
	if err != nil {
		return models.Period{}, fmt.Errorf("active period: %w", err)
	}
	return models.Period{Year: doc.Year, Month: doc.Month}, nil
}

// SetActivePeriod upserts the active period document.
func (s *Settings) SetActivePeriod(ctx context.Context, period models.Period) error {
	doc := periodDocument{ID: activePeriodID, Year: period.Year, Month: period.Month}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": activePeriodID}, doc, opts); err != nil {
		return fmt.Errorf("store active period: %w", err)
	}
	return nil
}
