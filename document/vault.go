package document

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/prism-vault/prism/filesystem"
	"github.com/prism-vault/prism/log"
	"github.com/prism-vault/prism/theme"
	"github.com/prism-vault/prism/where"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// VaultStore keeps documents as files: markdown notes with YAML frontmatter
// and plain JSON objects. Files whose name starts with an underscore are
// drafts and never listed.
type VaultStore struct {
	fs afero.Afero
}

// NewVaultStore returns a store rooted at the top of fs.
func NewVaultStore(fs afero.Afero) *VaultStore {
	return &VaultStore{fs: fs}
}

// Vault returns a store over the configured vault directory.
func Vault() *VaultStore {
	return NewVaultStore(filesystem.Rooted(where.Vault()))
}

// Fs exposes the underlying filesystem view.
func (s *VaultStore) Fs() afero.Afero {
	return s.fs
}

func clean(p string) string {
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}

func (s *VaultStore) Read(ctx context.Context, p string) (theme.Bag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p = clean(p)
	c, ok := codecFor(p)
	if !ok {
		return nil, fmt.Errorf("read %s: unsupported document type", p)
	}

	data, err := s.fs.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", p, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}

	props, err := c.decode(data)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	return props, nil
}

// Write replaces the properties of the document at p, creating it and its
// parent directories when needed. The body of a markdown note is kept.
func (s *VaultStore) Write(ctx context.Context, p string, props theme.Bag) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p = clean(p)
	c, ok := codecFor(p)
	if !ok {
		return fmt.Errorf("write %s: unsupported document type", p)
	}

	previous, err := s.fs.ReadFile(p)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("write %s: %w", p, err)
	}

	data, err := c.encode(props, previous)
	if err != nil {
		return fmt.Errorf("write %s: %w", p, err)
	}

	if dir := path.Dir(p); dir != "." {
		if err := s.fs.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("write %s: %w", p, err)
		}
	}

	if err := s.fs.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", p, err)
	}

	log.WithFields(log.Fields{"path": p, "keys": len(props)}).Debug("wrote document")
	return nil
}

func (s *VaultStore) ListAll(ctx context.Context, collection string) ([]*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	collection = clean(collection)
	entries, err := s.fs.ReadDir(collection)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}

	names := lo.FilterMap(entries, func(e fs.FileInfo, _ int) (string, bool) {
		if e.IsDir() || strings.HasPrefix(e.Name(), "_") {
			return "", false
		}
		_, ok := codecFor(e.Name())
		return e.Name(), ok
	})
	sort.Strings(names)

	docs := make([]*Document, 0, len(names))
	for _, name := range names {
		p := path.Join(collection, name)
		props, err := s.Read(ctx, p)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			log.WithFields(log.Fields{"path": p, "error": err}).Warn("skipping unreadable document")
			continue
		}
		docs = append(docs, &Document{Path: p, Props: props})
	}
	return docs, nil
}

// FindByField compares values by their string form, so a numeric theme-id
// still matches.
func (s *VaultStore) FindByField(ctx context.Context, collection, field, value string) (*Document, error) {
	docs, err := s.ListAll(ctx, collection)
	if err != nil {
		return nil, err
	}

	doc, ok := lo.Find(docs, func(d *Document) bool {
		v, present := d.Props[field]
		return present && fmt.Sprint(v) == value
	})
	if !ok {
		return nil, fmt.Errorf("%s=%s in %s: %w", field, value, collection, ErrNotFound)
	}
	return doc, nil
}
