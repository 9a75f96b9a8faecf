package utils

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SerializeDocument converts a stored document into JSON-safe primitives.
// The store-assigned "_id" is exposed as a stringified "id" field, timestamp
// values become ISO-8601 strings, and everything else passes through as-is.
// The conversion is total: no value a document can legally hold makes it fail.
func SerializeDocument(doc bson.M) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if k == "_id" {
			out["id"] = StringifyID(v)
			continue
		}
		out[k] = jsonSafe(v)
	}
	return out
}

// StringifyID renders a store-assigned identifier as a plain string.
func StringifyID(v any) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(v)
}

func jsonSafe(v any) any {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339)
	default:
		return v
	}
}
