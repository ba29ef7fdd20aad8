package store

import (
	"context"
	"errors"

	"github.com/studenthub/apiserver/internal/db"
	"github.com/studenthub/apiserver/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const maxLibraryDocs = 100

// LibraryRepository handles persistence for shared reference data:
// question papers, ebooks, and the campus info document.
type LibraryRepository struct {
	papers *mongo.Collection
	ebooks *mongo.Collection
	info   *mongo.Collection
}

func NewLibraryRepository(database *mongo.Database) *LibraryRepository {
	return &LibraryRepository{
		papers: database.Collection(db.CollPapers),
		ebooks: database.Collection(db.CollEbooks),
		info:   database.Collection(db.CollStudentInfo),
	}
}

func (r *LibraryRepository) ListPapers(ctx context.Context) ([]types.Paper, error) {
	cursor, err := r.papers.Find(ctx, bson.M{}, options.Find().SetLimit(maxLibraryDocs))
	if err != nil {
		return nil, err
	}
	var papers []types.Paper
	if err := cursor.All(ctx, &papers); err != nil {
		return nil, err
	}
	return papers, nil
}

func (r *LibraryRepository) GetPaperByFilename(ctx context.Context, filename string) (types.Paper, error) {
	var paper types.Paper
	err := r.papers.FindOne(ctx, bson.M{"filename": filename}).Decode(&paper)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return types.Paper{}, ErrNotFound
		}
		return types.Paper{}, err
	}
	return paper, nil
}

// StudentInfo returns the single campus info document. The collection
// has no fixed schema, so the document comes back as a plain map with
// its object id rendered as hex.
func (r *LibraryRepository) StudentInfo(ctx context.Context) (map[string]any, error) {
	var doc bson.M
	err := r.info.FindOne(ctx, bson.M{}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		doc["_id"] = oid.Hex()
	}
	return doc, nil
}

func (r *LibraryRepository) ListEbooks(ctx context.Context) ([]types.Ebook, error) {
	cursor, err := r.ebooks.Find(ctx, bson.M{}, options.Find().SetLimit(maxLibraryDocs))
	if err != nil {
		return nil, err
	}
	var ebooks []types.Ebook
	if err := cursor.All(ctx, &ebooks); err != nil {
		return nil, err
	}
	return ebooks, nil
}
