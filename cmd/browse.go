package cmd

import (
	"errors"

	"github.com/prism-vault/prism/key"
	"github.com/prism-vault/prism/tui"
	"github.com/prism-vault/prism/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().Bool("no-sync", false, "Do not propagate switched themes to the host stores")
}

// browseCmd opens the interactive theme browser.
var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"b", "tui"},
	Short:   "Browse themes with a live preview and switch between them",
	Run: func(cmd *cobra.Command, args []string) {
		if !util.IsInteractive() {
			handleErr(errors.New("browse needs an interactive terminal"))
		}

		handleErr(tui.Run(&tui.Options{
			Sync: viper.GetBool(key.SyncOnSwitch) && !lo.Must(cmd.Flags().GetBool("no-sync")),
		}))
	},
}
