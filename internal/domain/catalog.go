package domain

// Document is an opaque record owned by the document store.
//
// Category, book, and borrowed-book records are passed through unchanged:
// the server imposes no schema beyond the handful of fields it filters on
// (category, quantity, bookId, borrower.email).
type Document map[string]interface{}

// BookFilter restricts a book listing.
//
// InStock takes precedence over Category: when set, the listing returns
// only records whose quantity exceeds zero, regardless of category.
type BookFilter struct {
	Category string
	InStock  bool
}

// InsertResult reports the identifier assigned to a newly inserted record.
type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

// UpdateResult reports how many records an update matched and modified.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult reports how many records a delete removed.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
