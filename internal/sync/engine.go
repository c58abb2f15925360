package sync

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/prism-vault/prism/constant"
	"github.com/prism-vault/prism/document"
	"github.com/prism-vault/prism/log"
	"github.com/prism-vault/prism/notify"
	"github.com/prism-vault/prism/theme"
	"github.com/samber/lo"
)

// Names of the built-in sinks.
const (
	Appearance      = "appearance"
	StyleSettings   = "styleSettings"
	MinimalSettings = "minimalSettings"
)

// Projection selects what a theme contributes to a sink.
// It returns false when the theme has nothing for the sink.
type Projection func(r *theme.Resolved) (theme.Bag, bool)

// Target pairs a sink with its projection.
type Target struct {
	Sink    Sink
	Project Projection
}

// Result maps sink names to whether they were updated. Skipped sinks are absent.
type Result map[string]bool

// Failed returns the names of sinks that could not be updated, sorted.
func (r Result) Failed() []string {
	failed := lo.Keys(lo.PickBy(r, func(_ string, ok bool) bool { return !ok }))
	sort.Strings(failed)
	return failed
}

// OK reports whether no sink failed.
func (r Result) OK() bool {
	return len(r.Failed()) == 0
}

// Engine writes resolved themes to a fixed set of sinks.
type Engine struct {
	Targets  []Target
	Notifier notify.Notifier
	Reports  *ReportStore
}

// NewEngine returns an engine over the host's appearance store and the two
// settings-plugin stores of the vault.
func NewEngine(store document.Store, notifier notify.Notifier) *Engine {
	if notifier == nil {
		notifier = notify.Discard
	}
	return &Engine{
		Targets: []Target{
			{Sink: NewFileSink(Appearance, constant.AppearancePath, store), Project: projectAppearance},
			{Sink: NewFileSink(StyleSettings, constant.StyleSettingsPath, store), Project: projectStyleSettings},
			{Sink: NewFileSink(MinimalSettings, constant.MinimalSettingsPath, store), Project: projectMinimalSettings},
		},
		Notifier: notifier,
	}
}

func projectAppearance(r *theme.Resolved) (theme.Bag, bool) {
	accent := r.Get(theme.HostAccentColor)
	if accent == "" {
		return nil, false
	}
	return theme.Bag{"accentColor": accent}, true
}

func projectStyleSettings(r *theme.Resolved) (theme.Bag, bool) {
	bag, ok := r.SyncStyleSettings()
	return bag, ok && len(bag) > 0
}

func projectMinimalSettings(r *theme.Resolved) (theme.Bag, bool) {
	bag, ok := r.Props.Object(string(theme.MinimalSettings))
	return bag, ok && len(bag) > 0
}

// Sync merges the theme into every sink it has data for. A failing sink does
// not stop the others; its entry in the result is false.
func (e *Engine) Sync(ctx context.Context, r *theme.Resolved) Result {
	result := make(Result, len(e.Targets))

	for _, target := range e.Targets {
		name := target.Sink.Name()
		fields := log.Fields{"sink": name, "theme": r.ID()}

		projected, ok := target.Project(r)
		if !ok {
			log.WithFields(fields).Debug("nothing to sync")
			continue
		}

		if err := apply(ctx, target.Sink, projected); err != nil {
			fields["error"] = err
			log.WithFields(fields).Error("sync failed")
			result[name] = false
			continue
		}

		log.WithFields(fields).Info("synced")
		result[name] = true
	}

	if failed := result.Failed(); len(failed) > 0 {
		e.Notifier.Notify(notify.Failure, fmt.Sprintf("Could not sync %s", strings.Join(failed, ", ")))
	}

	if e.Reports != nil {
		if err := e.Reports.Save(NewReport(r.ID(), result)); err != nil {
			log.WithFields(log.Fields{"error": err}).Warn("could not save sync report")
		}
	}

	return result
}

// apply performs one read-merge-write. An unreadable sink counts as empty.
func apply(ctx context.Context, sink Sink, projected theme.Bag) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("sink %s panicked: %v", sink.Name(), p)
		}
	}()

	existing, err := sink.Read(ctx)
	if err != nil {
		log.WithFields(log.Fields{"sink": sink.Name(), "error": err}).Debug("treating sink as empty")
		existing = theme.Bag{}
	}

	return sink.Write(ctx, existing.Merge(projected))
}
