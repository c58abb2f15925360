package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/muesli/reflow/wordwrap"
	"github.com/prism-vault/prism/color"
	"github.com/prism-vault/prism/constant"
	"github.com/prism-vault/prism/icon"
	"github.com/prism-vault/prism/style"
	"github.com/prism-vault/prism/theme"
	"github.com/prism-vault/prism/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(themesCmd)
}

// themesCmd groups the theme catalog commands.
var themesCmd = &cobra.Command{
	Use:     "themes",
	Aliases: []string{"theme"},
	Short:   "Browse and edit the themes stored in the vault",
}

func init() {
	themesCmd.AddCommand(themesListCmd)
	themesListCmd.Flags().StringP("filter", "f", "", "Only list themes whose id or name fuzzy-matches the filter")
	themesListCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
}

var themesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available themes",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			ctx    = cmd.Context()
			filter = lo.Must(cmd.Flags().GetString("filter"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
		)

		infos, err := getEngine().Resolver.AvailableThemes(ctx)
		handleErr(err)

		if filter != "" {
			infos = lo.Filter(infos, func(i theme.Info, _ int) bool {
				return fuzzy.MatchFold(filter, i.ID) || fuzzy.MatchFold(filter, i.Name)
			})
		}

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(infos))
			return
		}

		if len(infos) == 0 {
			cmd.Printf("%s no themes in %s\n", icon.Get(icon.Warn), constant.ThemesDir)
			return
		}

		current := currentSelection(ctx).ThemeID
		for _, info := range infos {
			marker := " "
			if info.ID == current {
				marker = style.Fg(color.Green)(icon.Get(icon.Success))
			}

			cmd.Printf(
				"%s %s %s\n",
				marker,
				style.Fg(color.Purple)(info.ID),
				style.Faint(info.Name),
			)
		}

		cmd.Println()
		cmd.Println(style.Faint(util.Quantify(len(infos), "theme", "themes")))
	},
}

func init() {
	themesCmd.AddCommand(themesShowCmd)
	themesShowCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	themesShowCmd.Flags().BoolP("resolved", "r", false, "Show the resolved properties instead of the raw document")
}

var themesShowCmd = &cobra.Command{
	Use:               "show <theme-id>",
	Short:             "Show a theme document",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionThemeIDs,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			ctx      = cmd.Context()
			id       = args[0]
			asJson   = lo.Must(cmd.Flags().GetBool("json"))
			resolved = lo.Must(cmd.Flags().GetBool("resolved"))
			e        = getEngine()
		)

		doc, err := e.Resolver.FindTheme(ctx, id)
		if err != nil {
			handleErr(errUnknownTheme(cmd, id))
		}

		props := doc.Props
		if resolved {
			props = e.Resolver.LoadThemeByID(ctx, id).Props
		}

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(props))
			return
		}

		info, _ := theme.InfoFrom(doc.Path, doc.Props)
		cmd.Println(style.Title(info.Name))
		if info.Description != "" {
			cmd.Println(wordwrap.String(style.Italic(info.Description), util.TerminalWidth(80)))
		}
		cmd.Printf("%s %s", style.Faint("path"), doc.Path)
		if info.Version != "" {
			cmd.Printf("  %s %s", style.Faint("version"), info.Version)
		}
		if info.Author != "" {
			cmd.Printf("  %s %s", style.Faint("by"), info.Author)
		}
		cmd.Println()
		cmd.Println()

		printProps(cmd, props, false)
	},
}

func init() {
	themesCmd.AddCommand(themesSetCmd)
}

var themesSetCmd = &cobra.Command{
	Use:               "set <theme-id> <key> [value]",
	Short:             "Set a property of a theme document, or remove it when no value is given",
	Args:              cobra.RangeArgs(2, 3),
	ValidArgsFunction: completionThemeIDs,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			ctx = cmd.Context()
			id  = args[0]
			k   = args[1]
			e   = getEngine()
		)

		doc, err := e.Resolver.FindTheme(ctx, id)
		if err != nil {
			handleErr(errUnknownTheme(cmd, id))
		}

		props := doc.Props.Clone()
		if len(args) == 3 && args[2] != "" {
			props[k] = args[2]
		} else {
			delete(props, k)
		}

		if k == string(theme.ID) && props.String(theme.ID) != id {
			handleErr(fmt.Errorf("renaming a theme is not supported, edit %s directly", doc.Path))
		}

		handleErr(e.Store.Write(ctx, doc.Path, props))
		e.State.Clear()

		cmd.Printf(
			"%s set %s of %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(k),
			style.Fg(color.Yellow)(id),
		)
	},
}
