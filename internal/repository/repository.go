// Package repository provides document-store access for the catalog.
//
// The store is treated as a request/response query service: records are
// opaque documents and the repository imposes no schema beyond the fields
// the application filters on. Each method is a single driver call with the
// request context threaded through; there is no retry and no cross-call
// atomicity.
package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names within the catalog database.
const (
	categoriesCollection    = "categories"
	booksCollection         = "books"
	borrowedBooksCollection = "borrowedBooks"
)

// Connect opens a client against the document store and verifies the
// connection with a ping. A failure here is fatal at startup; the process
// must not begin serving traffic without its store.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).SetStrict(true)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, fmt.Errorf("document store connection failed: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("document store ping failed: %w", err)
	}

	return client, nil
}

// Store provides access to the catalog collections.
type Store struct {
	categories    *mongo.Collection
	books         *mongo.Collection
	borrowedBooks *mongo.Collection
}

// New creates a Store over the given database.
func New(db *mongo.Database) *Store {
	return &Store{
		categories:    db.Collection(categoriesCollection),
		books:         db.Collection(booksCollection),
		borrowedBooks: db.Collection(borrowedBooksCollection),
	}
}
