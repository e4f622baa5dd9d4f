package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Albab47/librarylog-server/internal/domain"
)

// BuildBookFilter translates a listing filter into a store query document.
//
// The in-stock flag takes precedence over the category filter: when set, the
// query matches only records with quantity above zero and the category is
// ignored. With neither set the query matches every record.
func BuildBookFilter(f domain.BookFilter) bson.M {
	if f.InStock {
		return bson.M{"quantity": bson.M{"$gt": 0}}
	}
	if f.Category != "" {
		return bson.M{"category": f.Category}
	}
	return bson.M{}
}

// ListBooks returns all book records matching the filter.
func (s *Store) ListBooks(ctx context.Context, f domain.BookFilter) ([]domain.Document, error) {
	cursor, err := s.books.Find(ctx, BuildBookFilter(f))
	if err != nil {
		return nil, err
	}

	var books []domain.Document
	if err := cursor.All(ctx, &books); err != nil {
		return nil, err
	}
	if books == nil {
		books = []domain.Document{}
	}
	return books, nil
}

// GetBook fetches a single book record by identifier.
// Absence is a valid outcome: a missing record yields (nil, nil).
func (s *Store) GetBook(ctx context.Context, id string) (domain.Document, error) {
	objectID, err := parseObjectID("repository.get_book", id)
	if err != nil {
		return nil, err
	}

	var book domain.Document
	err = s.books.FindOne(ctx, bson.M{"_id": objectID}).Decode(&book)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return book, nil
}

// InsertBook stores a new book record and reports its assigned identifier.
func (s *Store) InsertBook(ctx context.Context, book domain.Document) (*domain.InsertResult, error) {
	res, err := s.books.InsertOne(ctx, bson.M(book))
	if err != nil {
		return nil, err
	}
	return &domain.InsertResult{InsertedID: insertedIDHex(res)}, nil
}

// UpdateBook replaces the given fields on a book record.
func (s *Store) UpdateBook(ctx context.Context, id string, fields domain.Document) (*domain.UpdateResult, error) {
	objectID, err := parseObjectID("repository.update_book", id)
	if err != nil {
		return nil, err
	}

	res, err := s.books.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return nil, err
	}
	return &domain.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// AdjustBook applies numeric increments to fields on a book record
// (e.g. quantity adjustment on borrow and return).
func (s *Store) AdjustBook(ctx context.Context, id string, increments domain.Document) (*domain.UpdateResult, error) {
	objectID, err := parseObjectID("repository.adjust_book", id)
	if err != nil {
		return nil, err
	}

	res, err := s.books.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$inc": bson.M(increments)})
	if err != nil {
		return nil, err
	}
	return &domain.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// parseObjectID converts a caller-supplied identifier into the store's
// identifier format. A malformed identifier is a client error, not a store
// fault.
func parseObjectID(op, id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.Invalid(op, "Invalid resource identifier")
	}
	return objectID, nil
}

// insertedIDHex renders the store-assigned identifier of an insert.
func insertedIDHex(res *mongo.InsertOneResult) string {
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}
