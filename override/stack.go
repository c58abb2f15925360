// Package override keeps transient themes that take precedence over the
// persisted selection, such as a preview shown while a theme is edited.
package override

import (
	"context"
	"sync"

	"github.com/prism-vault/prism/derive"
	"github.com/prism-vault/prism/resolver"
	"github.com/prism-vault/prism/theme"
	"github.com/samber/mo"
)

type slot struct {
	theme   *theme.Resolved
	removed bool
}

// Stack is a last-in-first-out list of override themes. Entries are removed
// through the Handle returned by Push, in any order.
type Stack struct {
	mu    sync.Mutex
	slots []*slot
}

// Handle identifies one pushed entry.
type Handle struct {
	stack *Stack
	slot  *slot
}

// Push completes bag over the default theme and puts the result on top.
func (s *Stack) Push(bag theme.Bag) *Handle {
	props := derive.Derive(theme.Default().MergeTruthy(bag))
	return s.PushResolved(theme.NewResolved(props, nil, nil))
}

// PushResolved puts an already complete theme on top.
func (s *Stack) PushResolved(r *theme.Resolved) *Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl := &slot{theme: r}
	s.slots = append(s.slots, sl)
	return &Handle{stack: s, slot: sl}
}

// Theme returns the entry the handle refers to.
func (h *Handle) Theme() *theme.Resolved {
	return h.slot.theme
}

// Remove takes the entry off the stack. Calling it again does nothing.
func (h *Handle) Remove() {
	s := h.stack
	s.mu.Lock()
	defer s.mu.Unlock()

	h.slot.removed = true
	s.compact()
}

// compact drops tombstones from the top so the slice does not grow without bound.
func (s *Stack) compact() {
	for len(s.slots) > 0 && s.slots[len(s.slots)-1].removed {
		s.slots[len(s.slots)-1] = nil
		s.slots = s.slots[:len(s.slots)-1]
	}
}

// Peek returns the most recently pushed entry that has not been removed.
func (s *Stack) Peek() mo.Option[*theme.Resolved] {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.slots) - 1; i >= 0; i-- {
		if !s.slots[i].removed {
			return mo.Some(s.slots[i].theme)
		}
	}
	return mo.None[*theme.Resolved]()
}

// Len returns the number of live entries.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, sl := range s.slots {
		if !sl.removed {
			n++
		}
	}
	return n
}

// Clear removes every entry. Handles obtained earlier become no-ops.
func (s *Stack) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sl := range s.slots {
		sl.removed = true
	}
	s.slots = nil
}

// Resolve returns the top override when there is one, otherwise the theme the
// resolver produces for the selection. The flag reports which one was used.
func Resolve(ctx context.Context, s *Stack, r *resolver.Resolver, themeID, overrideID string) (*theme.Resolved, bool) {
	if top, ok := s.Peek().Get(); ok {
		return top, true
	}
	return r.Resolve(ctx, themeID, overrideID), false
}
