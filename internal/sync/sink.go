// Package sync propagates resolved themes to the host's configuration stores.
package sync

import (
	"context"

	"github.com/prism-vault/prism/document"
	"github.com/prism-vault/prism/theme"
)

// Sink is an external key-value store a theme is propagated to.
type Sink interface {
	Name() string
	Read(ctx context.Context) (theme.Bag, error)
	Write(ctx context.Context, props theme.Bag) error
}

// FileSink is a sink kept as a JSON document in the vault.
type FileSink struct {
	name  string
	path  string
	store document.Store
}

// NewFileSink returns a sink named name stored at path.
func NewFileSink(name, path string, store document.Store) *FileSink {
	return &FileSink{name: name, path: path, store: store}
}

func (s *FileSink) Name() string { return s.name }

// Path returns the vault path of the sink file.
func (s *FileSink) Path() string { return s.path }

func (s *FileSink) Read(ctx context.Context) (theme.Bag, error) {
	return s.store.Read(ctx, s.path)
}

func (s *FileSink) Write(ctx context.Context, props theme.Bag) error {
	return s.store.Write(ctx, s.path, props)
}
