package resolver

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/prism-vault/prism/constant"
	"github.com/prism-vault/prism/document"
	"github.com/prism-vault/prism/log"
	"github.com/prism-vault/prism/notify"
	"github.com/prism-vault/prism/theme"
	"github.com/prism-vault/prism/version"
	"github.com/samber/lo"
)

// AvailableThemes lists every theme document, sorted by id.
func (r *Resolver) AvailableThemes(ctx context.Context) ([]theme.Info, error) {
	if hit, ok := r.State.themes.Get().Get(); ok {
		return hit, nil
	}

	gen := r.State.generation.Load()
	docs, err := r.Store.ListAll(ctx, constant.ThemesDir)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}

	infos := lo.FilterMap(docs, func(d *document.Document, _ int) (theme.Info, bool) {
		if path.Ext(d.Path) != constant.ThemeExtension {
			return theme.Info{}, false
		}
		return theme.InfoFrom(d.Path, d.Props)
	})
	infos = r.dedupe(infos)
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })

	r.State.store(gen, func() { r.State.themes.Set(infos) })
	return infos, nil
}

// dedupe keeps the first document per theme-id, which is the one resolution
// finds. A shadowed document with a newer theme-version is reported.
func (r *Resolver) dedupe(infos []theme.Info) []theme.Info {
	seen := make(map[string]theme.Info, len(infos))
	return lo.Filter(infos, func(info theme.Info, _ int) bool {
		first, dup := seen[info.ID]
		if !dup {
			seen[info.ID] = info
			return true
		}

		log.WithFields(log.Fields{"theme": info.ID, "used": first.Path, "shadowed": info.Path}).Warn("duplicate theme id")
		if version.Newer(info.Version, first.Version) {
			r.Notifier.Notify(notify.Warning, fmt.Sprintf(
				"Theme %q in %s (v%s) is shadowed by an older copy in %s (v%s)",
				info.ID, info.Path, info.Version, first.Path, first.Version,
			))
		}
		return false
	})
}

// AvailableColorSchemes lists the names of every color override, sorted.
func (r *Resolver) AvailableColorSchemes(ctx context.Context) ([]string, error) {
	if hit, ok := r.State.schemes.Get().Get(); ok {
		return hit, nil
	}

	gen := r.State.generation.Load()
	docs, err := r.Store.ListAll(ctx, constant.ThemesDir)
	if err != nil {
		return nil, fmt.Errorf("list color schemes: %w", err)
	}

	names := lo.FilterMap(docs, func(d *document.Document, _ int) (string, bool) {
		return SchemeName(d.Path)
	})
	sort.Strings(names)

	r.State.store(gen, func() { r.State.schemes.Set(names) })
	return names, nil
}

// SchemeName extracts the override name from a style-settings-<name>.json path.
func SchemeName(p string) (string, bool) {
	base := path.Base(p)
	if !strings.HasPrefix(base, constant.OverridePrefix) || path.Ext(base) != constant.OverrideExtension {
		return "", false
	}

	name := strings.TrimSuffix(strings.TrimPrefix(base, constant.OverridePrefix), constant.OverrideExtension)
	return name, name != ""
}

// ThemeMetadata reads listing metadata for the theme document at path.
func (r *Resolver) ThemeMetadata(ctx context.Context, p string) (theme.Info, error) {
	props, err := r.Store.Read(ctx, p)
	if err != nil {
		return theme.Info{}, err
	}

	info, ok := theme.InfoFrom(p, props)
	if !ok {
		return theme.Info{}, fmt.Errorf("%s has no %s: %w", p, constant.ThemeIDField, document.ErrNotFound)
	}
	return info, nil
}

// Suggest returns the available theme id closest to id, if one is close enough
// to be a plausible typo.
func (r *Resolver) Suggest(ctx context.Context, id string) (string, bool) {
	infos, err := r.AvailableThemes(ctx)
	if err != nil || len(infos) == 0 {
		return "", false
	}

	ids := lo.Map(infos, func(i theme.Info, _ int) string { return i.ID })
	closest := lo.MinBy(ids, func(a, b string) bool {
		return levenshtein.Distance(id, a) < levenshtein.Distance(id, b)
	})

	limit := max(2, len(id)/3)
	if levenshtein.Distance(strings.ToLower(id), strings.ToLower(closest)) > limit {
		return "", false
	}
	return closest, true
}
