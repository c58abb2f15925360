package cmd

import (
	"context"
	"errors"
	"fmt"
	"sync"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/prism-vault/prism/color"
	"github.com/prism-vault/prism/engine"
	"github.com/prism-vault/prism/key"
	"github.com/prism-vault/prism/settings"
	"github.com/prism-vault/prism/style"
	"github.com/prism-vault/prism/theme"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	engineOnce sync.Once
	prism      *engine.Engine
)

// getEngine builds the engine on first use, after flags have been bound.
func getEngine() *engine.Engine {
	engineOnce.Do(func() {
		prism = engine.FromConfig()
	})
	return prism
}

// currentSelection reads the persisted selection; a missing settings document
// yields the configured default.
func currentSelection(ctx context.Context) settings.Selection {
	sel, err := settings.Load(ctx, getEngine().Store, viper.GetString(key.ThemeDefaultID))
	if err != nil && !errors.Is(err, settings.ErrMissing) {
		handleErr(err)
	}
	return sel
}

// selectionFromFlags applies --theme and --override on top of the persisted selection.
func selectionFromFlags(cmd *cobra.Command) settings.Selection {
	sel := currentSelection(cmd.Context())

	if cmd.Flags().Changed("theme") {
		sel.ThemeID = lo.Must(cmd.Flags().GetString("theme"))
	}
	if cmd.Flags().Changed("override") {
		sel.ColorOverrideID = lo.Must(cmd.Flags().GetString("override"))
	}
	return sel
}

func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("theme", "t", "", "Theme id to use instead of the persisted selection")
	cmd.Flags().StringP("override", "o", "", "Color override to use instead of the persisted selection")
	_ = cmd.RegisterFlagCompletionFunc("theme", completionThemeIDs)
	_ = cmd.RegisterFlagCompletionFunc("override", completionSchemes)
}

func completionThemeIDs(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	infos, err := getEngine().Resolver.AvailableThemes(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return lo.Map(infos, func(i theme.Info, _ int) string { return i.ID }), cobra.ShellCompDirectiveNoFileComp
}

func completionSchemes(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	names, err := getEngine().Resolver.AvailableColorSchemes(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func errUnknownTheme(cmd *cobra.Command, id string) error {
	msg := fmt.Sprintf("unknown theme %s", style.Fg(color.Red)(id))
	if closest, ok := getEngine().Resolver.Suggest(cmd.Context(), id); ok {
		msg += fmt.Sprintf(", did you mean %s?", style.Fg(color.Yellow)(closest))
	}
	return errors.New(msg)
}

func errUnknownScheme(name string, available []string) error {
	msg := fmt.Sprintf("unknown color override %s", style.Fg(color.Red)(name))
	if len(available) > 0 {
		msg += fmt.Sprintf(", did you mean %s?", style.Fg(color.Yellow)(closest(name, available)))
	}
	return errors.New(msg)
}

// closest returns the candidate with the smallest edit distance to target.
func closest(target string, candidates []string) string {
	return lo.MinBy(candidates, func(a, b string) bool {
		return levenshtein.Distance(target, a) < levenshtein.Distance(target, b)
	})
}

func themeExists(cmd *cobra.Command, id string) bool {
	infos, err := getEngine().Resolver.AvailableThemes(cmd.Context())
	handleErr(err)
	return lo.ContainsBy(infos, func(i theme.Info) bool { return i.ID == id })
}
