package override

import (
	"context"
	"sync"
	"testing"

	"github.com/prism-vault/prism/document"
	"github.com/prism-vault/prism/resolver"
	"github.com/prism-vault/prism/theme"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestStack(t *testing.T) {
	Convey("Given an empty stack", t, func() {
		var s Stack

		Convey("Peek is empty", func() {
			So(s.Peek().IsAbsent(), ShouldBeTrue)
			So(s.Len(), ShouldEqual, 0)
		})

		Convey("A partial push is completed", func() {
			h := s.Push(theme.Bag{"color-accent": "#f00"})

			top, ok := s.Peek().Get()
			So(ok, ShouldBeTrue)
			So(top, ShouldPointTo, h.Theme())
			So(top.Get(theme.ColorAccent), ShouldEqual, "#f00")
			for _, p := range theme.WellKnown {
				So(top.Props.Has(p), ShouldBeTrue)
			}

			Convey("Removing it empties the stack", func() {
				h.Remove()
				So(s.Peek().IsAbsent(), ShouldBeTrue)
			})
		})

		Convey("Blank values in a push keep the defaults", func() {
			h := s.Push(theme.Bag{"color-accent": "", "color-text": nil})
			So(h.Theme().Props.Has(theme.ColorAccent), ShouldBeTrue)
			So(h.Theme().Props.Has(theme.ColorText), ShouldBeTrue)
		})

		Convey("Removal reverts to the previous top", func() {
			a := s.Push(theme.Bag{"color-accent": "#a00"})
			b := s.Push(theme.Bag{"color-accent": "#b00"})
			So(s.Peek().MustGet().Get(theme.ColorAccent), ShouldEqual, "#b00")

			b.Remove()
			So(s.Peek().MustGet(), ShouldPointTo, a.Theme())
		})

		Convey("Entries can be removed out of order", func() {
			a := s.Push(theme.Bag{"color-accent": "#a00"})
			b := s.Push(theme.Bag{"color-accent": "#b00"})
			c := s.Push(theme.Bag{"color-accent": "#c00"})

			b.Remove()
			So(s.Peek().MustGet(), ShouldPointTo, c.Theme())
			So(s.Len(), ShouldEqual, 2)

			c.Remove()
			So(s.Peek().MustGet(), ShouldPointTo, a.Theme())
		})

		Convey("Removing twice is harmless", func() {
			a := s.Push(theme.Bag{"color-accent": "#a00"})
			b := s.Push(theme.Bag{"color-accent": "#b00"})
			b.Remove()
			b.Remove()
			So(s.Peek().MustGet(), ShouldPointTo, a.Theme())
		})

		Convey("The same theme pushed twice is removed by handle", func() {
			shared := theme.NewResolved(theme.Bag{"theme-id": "shared"}, nil, nil)
			first := s.PushResolved(shared)
			s.PushResolved(shared)

			first.Remove()
			So(s.Len(), ShouldEqual, 1)
			So(s.Peek().MustGet(), ShouldPointTo, shared)
		})

		Convey("Clear drops everything and old handles are inert", func() {
			a := s.Push(theme.Bag{"color-accent": "#a00"})
			s.Clear()
			b := s.Push(theme.Bag{"color-accent": "#b00"})
			a.Remove()
			So(s.Peek().MustGet(), ShouldPointTo, b.Theme())
		})

		Convey("Concurrent scopes interleave safely", func() {
			var wg sync.WaitGroup
			for i := 0; i < 32; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					h := s.Push(theme.Bag{"color-accent": "#123"})
					s.Peek()
					h.Remove()
				}()
			}
			wg.Wait()
			So(s.Len(), ShouldEqual, 0)
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Given a resolver and a stack", t, func() {
		ctx := context.Background()
		store := document.NewVaultStore(afero.Afero{Fs: afero.NewMemMapFs()})
		r := resolver.New(store, resolver.NewState(), nil, nil)
		var s Stack

		Convey("Without overrides the selection is resolved", func() {
			got, isOverride := Resolve(ctx, &s, r, "nyanCat", "")
			So(isOverride, ShouldBeFalse)
			So(got, ShouldPointTo, r.Resolve(ctx, "nyanCat", ""))
		})

		Convey("The top override takes precedence", func() {
			h := s.Push(theme.Bag{"color-accent": "#f00"})
			got, isOverride := Resolve(ctx, &s, r, "nyanCat", "")
			So(isOverride, ShouldBeTrue)
			So(got, ShouldPointTo, h.Theme())
		})

		Convey("A pushed theme document preview takes precedence until removed", func() {
			So(store.Write(ctx, "System/Themes/ocean.md", theme.Bag{
				"theme-id":     "ocean",
				"color-accent": "#222222",
				"color-text":   "",
			}), ShouldBeNil)

			h := s.PushResolved(r.LoadThemeFromPath(ctx, "System/Themes/ocean.md"))
			got, isOverride := Resolve(ctx, &s, r, "nyanCat", "")
			So(isOverride, ShouldBeTrue)
			So(got.ID(), ShouldEqual, "ocean")
			So(got.Get(theme.ColorAccent), ShouldEqual, "#222222")
			So(got.Props.Has(theme.ColorText), ShouldBeTrue)

			h.Remove()
			got, isOverride = Resolve(ctx, &s, r, "nyanCat", "")
			So(isOverride, ShouldBeFalse)
			So(got.ID(), ShouldEqual, "default")
		})
	})
}
