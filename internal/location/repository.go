package location

import (
	"context"
	"time"

	"sos-service/internal/geo"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoRegistry keeps one document per user so several instances can share
// the same view of who is where. Only the latest position is stored.
type mongoRegistry struct {
	collection *mongo.Collection
}

func NewMongoRegistry(ctx context.Context, collection *mongo.Collection) (Registry, error) {
	if err := EnsureLocationIndexes(ctx, collection); err != nil {
		return nil, err
	}
	return &mongoRegistry{collection: collection}, nil
}

func (m *mongoRegistry) Upsert(ctx context.Context, userID string, coord geo.Coordinate) error {
	doc := UserLocation{
		UserID:     userID,
		Coordinate: coord,
		UpdatedAt:  time.Now().UTC(),
	}

	_, err := m.collection.ReplaceOne(ctx, bson.M{"_id": userID}, doc, options.Replace().SetUpsert(true))
	return err
}

func (m *mongoRegistry) Snapshot(ctx context.Context) ([]UserLocation, error) {
	cursor, err := m.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}

	locations := make([]UserLocation, 0)
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, err
	}

	return locations, nil
}

func (m *mongoRegistry) EvictOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	res, err := m.collection.DeleteMany(ctx, bson.M{"updated_at": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, err
	}
	return int(res.DeletedCount), nil
}

func (m *mongoRegistry) Len(ctx context.Context) (int, error) {
	n, err := m.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func EnsureLocationIndexes(ctx context.Context, coll *mongo.Collection) error {
	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "updated_at", Value: 1}},
			Options: options.Index().SetName("by_updated_at"),
		},
	}
	_, err := coll.Indexes().CreateMany(ctx, models)
	return err
}
