package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore adapts a *mongo.Database to the DocumentStore contract.
type MongoStore struct {
	db *mongo.Database
}

// NewMongoStore wraps the given database handle. A nil handle is allowed;
// every operation then fails with ErrStorageUnavailable, which keeps the
// server bootable while the database is down.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error) {
	if s.db == nil {
		return "", ErrStorageUnavailable
	}

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("inserting into %q: %w", collection, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

func (s *MongoStore) ListDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if s.db == nil {
		return nil, ErrStorageUnavailable
	}
	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find().SetLimit(limit)
	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("listing %q: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding %q documents: %w", collection, err)
	}

	for i := range docs {
		docs[i] = normalizeDocument(docs[i])
	}
	return docs, nil
}

func (s *MongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrStorageUnavailable
	}
	return s.db.ListCollectionNames(ctx, bson.M{})
}
