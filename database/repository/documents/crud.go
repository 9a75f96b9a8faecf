package documentsRepo

import (
	"context"

	"zellige/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateDocument inserts a new document and returns its store-assigned ID.
func (r *mongoDocumentRepo) CreateDocument(ctx context.Context, collection string, doc any) (string, error) {
	res, err := r.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	return utils.StringifyID(res.InsertedID), nil
}

// GetDocuments fetches up to limit documents matching the filter.
func (r *mongoDocumentRepo) GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	opts := options.Find().SetLimit(limit)
	cursor, err := r.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// ListCollectionNames returns up to limit collection names, for diagnostics.
func (r *mongoDocumentRepo) ListCollectionNames(ctx context.Context, limit int) ([]string, error) {
	names, err := r.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	if len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}
