package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/prism-vault/prism/key"
	"github.com/prism-vault/prism/log"
	"github.com/prism-vault/prism/resolver"
	"github.com/prism-vault/prism/settings"
	"github.com/prism-vault/prism/theme"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const noOverride = "none"

type catalogLoadedMsg struct {
	themes    []theme.Info
	schemes   []string
	selection settings.Selection
}

type switchedMsg struct {
	ok        bool
	selection settings.Selection
}

func (b *statefulBubble) loadCatalog() tea.Cmd {
	r := b.engine.Resolver
	store := b.engine.Store

	return func() tea.Msg {
		ctx := context.Background()

		// Rescans must see documents edited since the last scan.
		r.State.Clear()

		themes, err := r.AvailableThemes(ctx)
		if err != nil {
			return err
		}

		schemes, err := r.AvailableColorSchemes(ctx)
		if err != nil {
			return err
		}

		sel, err := settings.Load(ctx, store, viper.GetString(key.ThemeDefaultID))
		if err != nil && !errors.Is(err, settings.ErrMissing) {
			return err
		}

		return catalogLoadedMsg{themes: themes, schemes: schemes, selection: sel}
	}
}

func (b *statefulBubble) switchTheme(themeID, overrideID string) tea.Cmd {
	var (
		s          = b.engine.Switcher
		shouldSync = b.shouldSync
	)

	b.busy = true
	return func() tea.Msg {
		log.WithFields(log.Fields{"theme": themeID, "override": overrideID}).Info("switching from browser")
		sel := settings.Selection{
			ThemeID:         themeID,
			ColorOverrideID: overrideID,
			ShouldSync:      shouldSync,
		}
		ok := s.SwitchTheme(context.Background(), themeID, overrideID, shouldSync)
		return switchedMsg{ok: ok, selection: sel}
	}
}

func (b *statefulBubble) setCatalog(msg catalogLoadedMsg) tea.Cmd {
	b.selection = msg.selection

	themes := lo.Map(msg.themes, func(info theme.Info, _ int) list.Item {
		return &listItem{internal: info, marked: info.ID == b.selection.ThemeID}
	})
	schemes := lo.Map(append([]string{noOverride}, msg.schemes...), func(name string, _ int) list.Item {
		return &listItem{
			internal: name,
			marked:   name == b.selection.ColorOverrideID || (name == noOverride && b.selection.ColorOverrideID == ""),
		}
	})

	cmd := tea.Batch(b.themesC.SetItems(themes), b.schemesC.SetItems(schemes))
	if _, i, ok := lo.FindIndexOf(themes, func(item list.Item) bool { return item.(*listItem).marked }); ok {
		b.themesC.Select(i)
	}
	return cmd
}

// markSelection refreshes the markers after the selection changed.
func (b *statefulBubble) markSelection() {
	for _, item := range b.themesC.Items() {
		it := item.(*listItem)
		it.marked = it.internal.(theme.Info).ID == b.selection.ThemeID
	}
	for _, item := range b.schemesC.Items() {
		it := item.(*listItem)
		name := it.internal.(string)
		it.marked = name == b.selection.ColorOverrideID || (name == noOverride && b.selection.ColorOverrideID == "")
	}
}

// highlighted returns the theme and override the cursor currently points at.
func (b *statefulBubble) highlighted() (themeID, overrideID string, ok bool) {
	themeID, overrideID = b.selection.ThemeID, b.selection.ColorOverrideID

	switch b.state {
	case themesState:
		item, isItem := b.themesC.SelectedItem().(*listItem)
		if !isItem {
			return "", "", false
		}
		themeID = item.internal.(theme.Info).ID
	case schemesState:
		item, isItem := b.schemesC.SelectedItem().(*listItem)
		if !isItem {
			return "", "", false
		}
		overrideID = item.internal.(string)
		if overrideID == noOverride {
			overrideID = ""
		}
	default:
		return "", "", false
	}

	return themeID, overrideID, true
}

// refreshPreview resolves the highlighted combination when it changed.
func (b *statefulBubble) refreshPreview() {
	themeID, overrideID, ok := b.highlighted()
	if !ok {
		return
	}

	previewKey := themeID + "\x00" + overrideID
	if previewKey == b.previewKey && b.preview != nil {
		return
	}

	b.previewKey = previewKey
	b.preview = b.engine.Resolver.Resolve(context.Background(), themeID, overrideID)
}

// invalidatePreview forces the next refresh to resolve again.
func (b *statefulBubble) invalidatePreview() {
	b.previewKey = ""
	b.preview = nil
}

// overridePath is shown under the preview of a color override.
func overridePath(id string) string {
	if id == "" {
		return ""
	}
	return resolver.OverridePath(id)
}
