// Package document reads and writes the key-value documents themes,
// color overrides and settings are stored in.
package document

import (
	"context"
	"errors"

	"github.com/prism-vault/prism/theme"
)

var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrMalformed is returned when a document exists but cannot be decoded.
	ErrMalformed = errors.New("malformed document")
)

// Document is a property bag with the path it was read from.
type Document struct {
	Path  string
	Props theme.Bag
}

// Store is the document substrate the engine runs on. Paths are relative to
// the store root and use forward slashes.
type Store interface {
	// FindByField returns the first document in collection whose field equals value.
	FindByField(ctx context.Context, collection, field, value string) (*Document, error)

	// ListAll returns every readable document in collection, ordered by path.
	ListAll(ctx context.Context, collection string) ([]*Document, error)

	Read(ctx context.Context, path string) (theme.Bag, error)
	Write(ctx context.Context, path string, props theme.Bag) error
}
