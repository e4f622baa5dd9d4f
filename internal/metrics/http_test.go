package metrics

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/books", "/books"},
		{"/books/662f8f4e9d3b2a0012345678", "/books/{id}"},
		{"/update-book/662f8f4e9d3b2a0012345678", "/update-book/{id}"},
		{"/borrowed-books/find/662f8f4e9d3b2a0012345678", "/borrowed-books/find/{id}"},
		{"/borrowed-books/a@x.com", "/borrowed-books/{email}"},
		{"/categories", "/categories"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.path); got != tt.want {
			t.Errorf("normalizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
