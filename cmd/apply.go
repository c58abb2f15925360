package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(applyCmd)
}

// applyCmd re-applies whatever the settings document currently selects.
var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Re-apply the theme selected in the settings document",
	Long: `Re-apply the theme selected in the settings document.
Use it after editing System/Settings.md by hand; the sync flag stored there is honored.`,
	Run: func(cmd *cobra.Command, args []string) {
		if !getEngine().Switcher.ApplyCurrentTheme(cmd.Context()) {
			os.Exit(1)
		}
	},
}
