package cmd

import (
	"encoding/json"

	"github.com/prism-vault/prism/color"
	"github.com/prism-vault/prism/icon"
	"github.com/prism-vault/prism/resolver"
	"github.com/prism-vault/prism/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemesCmd)
	schemesCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
}

// schemesCmd lists the color overrides found next to the themes.
var schemesCmd = &cobra.Command{
	Use:     "schemes",
	Aliases: []string{"overrides"},
	Short:   "List available color overrides",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		names, err := getEngine().Resolver.AvailableColorSchemes(ctx)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(names))
			return
		}

		current := currentSelection(ctx).ColorOverrideID
		for _, name := range names {
			marker := " "
			if name == current {
				marker = style.Fg(color.Green)(icon.Get(icon.Success))
			}
			cmd.Printf("%s %s %s\n", marker, style.Fg(color.Purple)(name), style.Faint(resolver.OverridePath(name)))
		}
	},
}
