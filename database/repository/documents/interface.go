package documentsRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DocumentRepository mediates all reads and writes against the document store.
type DocumentRepository interface {
	CreateDocument(ctx context.Context, collection string, doc any) (string, error)
	GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
	ListCollectionNames(ctx context.Context, limit int) ([]string, error)
}

type mongoDocumentRepo struct {
	db *mongo.Database
}

// NewMongoDocumentRepo returns a new DocumentRepository instance using MongoDB.
func NewMongoDocumentRepo(db *mongo.Database) DocumentRepository {
	return &mongoDocumentRepo{db: db}
}
