package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/prism-vault/prism/color"
	"github.com/prism-vault/prism/derive"
	"github.com/prism-vault/prism/override"
	"github.com/prism-vault/prism/style"
	"github.com/prism-vault/prism/theme"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
	addSelectionFlags(resolveCmd)
	resolveCmd.Flags().BoolP("json", "j", false, "Print the resolved properties as JSON")
	resolveCmd.Flags().BoolP("all", "a", false, "Include properties that are not plain values")
	resolveCmd.Flags().StringArrayP("set", "s", nil, "Preview a property change as key=value without saving it")
	resolveCmd.Flags().StringP("path", "p", "", "Preview the theme document at this vault path instead of the selection")
}

// resolveCmd prints the fully derived property bag of a theme.
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the resolved properties of the active or given theme",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			ctx    = cmd.Context()
			sel    = selectionFromFlags(cmd)
			sets   = lo.Must(cmd.Flags().GetStringArray("set"))
			path   = lo.Must(cmd.Flags().GetString("path"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			all    = lo.Must(cmd.Flags().GetBool("all"))
			e      = getEngine()
		)

		var preview *theme.Resolved
		if path != "" {
			preview = e.Resolver.LoadThemeFromPath(ctx, path)
		}

		if len(sets) > 0 {
			if preview == nil {
				preview = e.Resolver.Resolve(ctx, sel.ThemeID, sel.ColorOverrideID)
			}
			for _, s := range sets {
				k, v, ok := strings.Cut(s, "=")
				if !ok || k == "" {
					handleErr(fmt.Errorf("invalid property %q, expected key=value", s))
				}
				preview = derive.UpdateProperty(preview, k, v)
			}
		}

		if preview != nil {
			h := e.Overrides.PushResolved(preview)
			defer h.Remove()
		}

		resolved, _ := override.Resolve(ctx, e.Overrides, e.Resolver, sel.ThemeID, sel.ColorOverrideID)

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(resolved.Props))
			return
		}

		printProps(cmd, resolved.Props, all)
	},
}

func printProps(cmd *cobra.Command, props theme.Bag, all bool) {
	keys := lo.Keys(props)
	sort.Strings(keys)

	width := lo.Max(lo.Map(keys, func(k string, _ int) int { return len(k) }))
	for _, k := range keys {
		var value string
		switch v := props[k].(type) {
		case string:
			value = style.Swatch(v)
		case bool, int, float64:
			value = style.Fg(color.Yellow)(fmt.Sprint(v))
		default:
			if !all {
				continue
			}
			value = style.Faint(fmt.Sprintf("%v", v))
		}

		cmd.Printf("%s %s\n", style.Fg(color.Purple)(k+strings.Repeat(" ", width-len(k))), value)
	}
}
