package repo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"hypermap/internal/domain/tile"
	errs "hypermap/internal/errors"
)

// MapDocument is the stored form of a map. Nodes keep id order.
type MapDocument struct {
	ID        string      `bson:"_id"`
	Nodes     []tile.Node `bson:"nodes"`
	NodeCount int         `bson:"node_count"`
}

type MongoMapStore struct {
	collection *mongo.Collection
	mapID      string
	log        *zap.SugaredLogger
}

func NewMongoMapStore(db *mongo.Database, collection, mapID string, log *zap.SugaredLogger) *MongoMapStore {
	return &MongoMapStore{
		collection: db.Collection(collection),
		mapID:      mapID,
		log:        log,
	}
}

func NewMapDocument(mapID string, m tile.Map) MapDocument {
	return MapDocument{
		ID:        mapID,
		Nodes:     m.Clone(),
		NodeCount: len(m),
	}
}

func (s *MongoMapStore) Target() string {
	return fmt.Sprintf("mongo %s/%s", s.collection.Name(), s.mapID)
}

// Save replaces the map document, creating it on first run.
func (s *MongoMapStore) Save(ctx context.Context, m tile.Map) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := NewMapDocument(s.mapID, m)
	filter := bson.M{"_id": s.mapID}
	opts := options.Replace().SetUpsert(true)

	if _, err := s.collection.ReplaceOne(ctx, filter, doc, opts); err != nil {
		s.log.Debugw("failed to store map in mongo", "id", s.mapID, "error", err)
		return fmt.Errorf("%w: %w", errs.ErrWriteFailed, err)
	}

	s.log.Debugw("map stored in mongo", "id", s.mapID, "nodes", doc.NodeCount)
	return nil
}
