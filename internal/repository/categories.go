package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Albab47/librarylog-server/internal/domain"
)

// ListCategories returns all book categories.
func (s *Store) ListCategories(ctx context.Context) ([]domain.Document, error) {
	cursor, err := s.categories.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var categories []domain.Document
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []domain.Document{}
	}
	return categories, nil
}
