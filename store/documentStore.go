package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrStorageUnavailable is returned when no database connection exists.
var ErrStorageUnavailable = errors.New("document store unavailable")

// DocumentStore is the narrow persistence contract the services are written
// against: one insert and one filtered list over named collections. It holds
// no business logic.
type DocumentStore interface {
	CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error)
	ListDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
}

// CollectionLister is implemented by stores that can enumerate their
// collections. The diagnostics endpoint uses it when available.
type CollectionLister interface {
	CollectionNames(ctx context.Context) ([]string, error)
}

// normalizeDocument rewrites driver-internal value types so documents encode
// cleanly as JSON: nested bson.D become maps, arrays become plain slices and
// ObjectIDs are rendered as hex strings.
func normalizeDocument(doc bson.M) bson.M {
	for k, v := range doc {
		doc[k] = normalizeValue(v)
	}
	return doc
}

func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.D:
		m := make(bson.M, len(val))
		for _, e := range val {
			m[e.Key] = normalizeValue(e.Value)
		}
		return m
	case primitive.M:
		for k, e := range val {
			val[k] = normalizeValue(e)
		}
		return val
	case primitive.A:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = normalizeValue(e)
		}
		return out
	case primitive.ObjectID:
		return val.Hex()
	default:
		return v
	}
}
