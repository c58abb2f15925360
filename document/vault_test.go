package document

import (
	"context"
	"errors"
	"testing"

	"github.com/prism-vault/prism/theme"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

const nyan = `---
theme-id: nyanCat
theme-name: Nyan Cat
bar-sprite-width: 34
style-settings:
  minimal-style@@ax1@@dark: "#ff66cc"
---
# Nyan Cat

Rainbow all the things.
`

func newStore() *VaultStore {
	fs := afero.Afero{Fs: afero.NewMemMapFs()}
	_ = fs.WriteFile("System/Themes/nyan.md", []byte(nyan), 0o644)
	_ = fs.WriteFile("System/Themes/_draft.md", []byte("---\ntheme-id: draft\n---\n"), 0o644)
	_ = fs.WriteFile("System/Themes/broken.md", []byte("---\ntheme-id: [unclosed\n---\n"), 0o644)
	_ = fs.WriteFile("System/Themes/style-settings-ocean.json", []byte(`{"minimal-style@@ax1@@dark": "#0077be"}`), 0o644)
	_ = fs.WriteFile("System/Themes/notes.txt", []byte("ignored"), 0o644)
	return NewVaultStore(fs)
}

func TestVaultStore(t *testing.T) {
	ctx := context.Background()

	Convey("Given a vault with theme documents", t, func() {
		store := newStore()

		Convey("Frontmatter is decoded with nested objects", func() {
			props, err := store.Read(ctx, "System/Themes/nyan.md")
			So(err, ShouldBeNil)
			So(props["theme-id"], ShouldEqual, "nyanCat")
			So(props["bar-sprite-width"], ShouldEqual, 34)

			nested, ok := props.Object("style-settings")
			So(ok, ShouldBeTrue)
			So(nested["minimal-style@@ax1@@dark"], ShouldEqual, "#ff66cc")
		})

		Convey("JSON documents are decoded", func() {
			props, err := store.Read(ctx, "System/Themes/style-settings-ocean.json")
			So(err, ShouldBeNil)
			So(props["minimal-style@@ax1@@dark"], ShouldEqual, "#0077be")
		})

		Convey("Missing documents report ErrNotFound", func() {
			_, err := store.Read(ctx, "System/Themes/missing.md")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})

		Convey("Malformed documents report ErrMalformed", func() {
			_, err := store.Read(ctx, "System/Themes/broken.md")
			So(errors.Is(err, ErrMalformed), ShouldBeTrue)
		})

		Convey("Listing skips drafts, unknown types and unreadable files", func() {
			docs, err := store.ListAll(ctx, "System/Themes")
			So(err, ShouldBeNil)
			So(docs, ShouldHaveLength, 2)
			So(docs[0].Path, ShouldEqual, "System/Themes/nyan.md")
			So(docs[1].Path, ShouldEqual, "System/Themes/style-settings-ocean.json")
		})

		Convey("Listing a missing collection is empty", func() {
			docs, err := store.ListAll(ctx, "Nowhere")
			So(err, ShouldBeNil)
			So(docs, ShouldBeEmpty)
		})

		Convey("Documents are found by field", func() {
			doc, err := store.FindByField(ctx, "System/Themes", "theme-id", "nyanCat")
			So(err, ShouldBeNil)
			So(doc.Path, ShouldEqual, "System/Themes/nyan.md")

			_, err = store.FindByField(ctx, "System/Themes", "theme-id", "draft")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})

		Convey("Writing a note keeps its body", func() {
			err := store.Write(ctx, "System/Themes/nyan.md", theme.Bag{"theme-id": "nyanCat", "color-accent": "#ff0000"})
			So(err, ShouldBeNil)

			props, err := store.Read(ctx, "System/Themes/nyan.md")
			So(err, ShouldBeNil)
			So(props["color-accent"], ShouldEqual, "#ff0000")
			So(props, ShouldNotContainKey, "theme-name")

			data, _ := store.Fs().ReadFile("System/Themes/nyan.md")
			So(string(data), ShouldEndWith, "# Nyan Cat\n\nRainbow all the things.\n")
		})

		Convey("Writing creates missing directories", func() {
			So(store.Write(ctx, ".obsidian/plugins/x/data.json", theme.Bag{"a": "b"}), ShouldBeNil)
			props, err := store.Read(ctx, ".obsidian/plugins/x/data.json")
			So(err, ShouldBeNil)
			So(props["a"], ShouldEqual, "b")
		})

		Convey("A cancelled context stops the call", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := store.Read(cancelled, "System/Themes/nyan.md")
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})

	Convey("Writes fail on a read-only vault", t, func() {
		store := NewVaultStore(afero.Afero{Fs: afero.NewReadOnlyFs(afero.NewMemMapFs())})
		So(store.Write(ctx, "System/Settings.md", theme.Bag{"widget-theme": "x"}), ShouldNotBeNil)
	})
}

func TestFrontmatterSplit(t *testing.T) {
	Convey("Notes without a block are all body", t, func() {
		header, body := frontmatter{}.split([]byte("# Title\n"))
		So(header, ShouldBeNil)
		So(string(body), ShouldEqual, "# Title\n")
	})

	Convey("Unterminated blocks are all body", t, func() {
		header, body := frontmatter{}.split([]byte("---\na: 1\n"))
		So(header, ShouldBeNil)
		So(string(body), ShouldEqual, "---\na: 1\n")
	})

	Convey("A block at the end of the file has no body", t, func() {
		header, body := frontmatter{}.split([]byte("---\na: 1\n---"))
		So(string(header), ShouldEqual, "a: 1\n")
		So(body, ShouldBeEmpty)
	})
}
