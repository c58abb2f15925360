package resolver

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/prism-vault/prism/internal/cache"
	"github.com/prism-vault/prism/theme"
	"golang.org/x/sync/singleflight"
)

// State holds everything a Resolver remembers between calls. It is owned by
// the host and shared by every resolver and switcher working on the same vault.
type State struct {
	resolved  *cache.Cache[string, *theme.Resolved]
	overrides *cache.Cache[string, theme.Bag]
	themes    cache.Slot[[]theme.Info]
	schemes   cache.Slot[[]string]

	// generation changes on every Clear; results computed under an older
	// generation are returned but not stored.
	mu         sync.Mutex
	generation atomic.Uint64
	flight     singleflight.Group
}

// NewState returns an empty state.
func NewState() *State {
	return &State{
		resolved:  cache.New[string, *theme.Resolved](),
		overrides: cache.New[string, theme.Bag](),
	}
}

// Clear invalidates all four caches together.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation.Add(1)
	s.resolved.Clear()
	s.overrides.Clear()
	s.themes.Clear()
	s.schemes.Clear()
}

// Stats reports how many entries each cache holds.
type Stats struct {
	Resolved  int  `json:"resolved"`
	Overrides int  `json:"overrides"`
	Themes    bool `json:"themes"`
	Schemes   bool `json:"schemes"`
}

func (s *State) Stats() Stats {
	return Stats{
		Resolved:  s.resolved.Len(),
		Overrides: s.overrides.Len(),
		Themes:    s.themes.Get().IsPresent(),
		Schemes:   s.schemes.Get().IsPresent(),
	}
}

// store runs set only if no Clear happened since gen was observed.
func (s *State) store(gen uint64, set func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation.Load() == gen {
		set()
	}
}

func (s *State) flightKey(gen uint64, key string) string {
	return fmt.Sprintf("%d/%s", gen, key)
}
