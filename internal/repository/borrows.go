package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Albab47/librarylog-server/internal/domain"
)

// InsertBorrow stores a new borrowed-book record linking a book and borrower.
func (s *Store) InsertBorrow(ctx context.Context, borrow domain.Document) (*domain.InsertResult, error) {
	res, err := s.borrowedBooks.InsertOne(ctx, bson.M(borrow))
	if err != nil {
		return nil, err
	}
	return &domain.InsertResult{InsertedID: insertedIDHex(res)}, nil
}

// ListBorrowsByBorrower returns all borrowed-book records for a borrower.
func (s *Store) ListBorrowsByBorrower(ctx context.Context, email string) ([]domain.Document, error) {
	cursor, err := s.borrowedBooks.Find(ctx, bson.M{"borrower.email": email})
	if err != nil {
		return nil, err
	}

	var borrows []domain.Document
	if err := cursor.All(ctx, &borrows); err != nil {
		return nil, err
	}
	if borrows == nil {
		borrows = []domain.Document{}
	}
	return borrows, nil
}

// DeleteBorrow removes a borrowed-book record (a return event).
func (s *Store) DeleteBorrow(ctx context.Context, id string) (*domain.DeleteResult, error) {
	objectID, err := parseObjectID("repository.delete_borrow", id)
	if err != nil {
		return nil, err
	}

	res, err := s.borrowedBooks.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return nil, err
	}
	return &domain.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// FindBorrow checks whether a borrower currently holds a specific book.
// Absence is a valid outcome: no matching record yields (nil, nil).
//
// The projection keeps the response to the linkage fields; the record's
// store identifier is not exposed.
func (s *Store) FindBorrow(ctx context.Context, bookID, email string) (domain.Document, error) {
	query := bson.M{"bookId": bookID, "borrower.email": email}
	opts := options.FindOne().SetProjection(bson.M{"_id": 0, "bookId": 1, "name": 1})

	var borrow domain.Document
	err := s.borrowedBooks.FindOne(ctx, query, opts).Decode(&borrow)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return borrow, nil
}
