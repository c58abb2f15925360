// Package engine assembles the resolver, override stack, synchronization and
// switching workflows around one shared state, the way a host embeds them.
package engine

import (
	"github.com/prism-vault/prism/document"
	themesync "github.com/prism-vault/prism/internal/sync"
	"github.com/prism-vault/prism/key"
	"github.com/prism-vault/prism/notify"
	"github.com/prism-vault/prism/override"
	"github.com/prism-vault/prism/resolver"
	"github.com/prism-vault/prism/switcher"
	"github.com/prism-vault/prism/where"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Options configures an Engine.
type Options struct {
	Store    document.Store
	Notifier notify.Notifier
	Mode     resolver.ModeSource
	Reloader switcher.Reloader

	DefaultThemeID string

	// CSS receives the exported snippet when set.
	CSS *afero.Afero

	// ReportPath, when set, persists the outcome of every synchronization there.
	ReportPath string
}

// Engine is the assembled set of components sharing one resolver state.
type Engine struct {
	State     *resolver.State
	Resolver  *resolver.Resolver
	Overrides *override.Stack
	Sync      *themesync.Engine
	Switcher  *switcher.Switcher
	Store     document.Store
}

// New wires the components together.
func New(opts Options) *Engine {
	if opts.Notifier == nil {
		opts.Notifier = notify.Discard
	}

	state := resolver.NewState()
	res := resolver.New(opts.Store, state, opts.Notifier, opts.Mode)

	sync := themesync.NewEngine(opts.Store, opts.Notifier)
	if opts.ReportPath != "" {
		sync.Reports = themesync.NewReportStore(opts.ReportPath)
	}

	return &Engine{
		State:     state,
		Resolver:  res,
		Overrides: &override.Stack{},
		Sync:      sync,
		Store:     opts.Store,
		Switcher: &switcher.Switcher{
			Store:          opts.Store,
			Resolver:       res,
			Sync:           sync,
			Notifier:       opts.Notifier,
			Reloader:       opts.Reloader,
			DefaultThemeID: opts.DefaultThemeID,
			CSS:            opts.CSS,
		},
	}
}

// FromConfig builds an engine over the configured vault, notifying both the
// log and the terminal.
func FromConfig() *Engine {
	return New(Configured(notify.Multi{notify.Log{}, notify.NewTerminal()}))
}

// Configured returns options for the configured vault delivering
// notifications to notifier.
func Configured(notifier notify.Notifier) Options {
	vault := document.Vault()

	opts := Options{
		Store:          vault,
		Notifier:       notifier,
		Mode:           resolver.ConfiguredMode,
		Reloader:       switcher.NewReloader(viper.GetString(key.CliReload), notifier),
		DefaultThemeID: viper.GetString(key.ThemeDefaultID),
	}

	if viper.GetBool(key.CSSExportOnSwitch) {
		fs := vault.Fs()
		opts.CSS = &fs
	}
	if viper.GetBool(key.SyncReport) {
		opts.ReportPath = where.SyncReport()
	}

	return opts
}
