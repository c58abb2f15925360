package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/prism-vault/prism/color"
	"github.com/prism-vault/prism/icon"
	themesync "github.com/prism-vault/prism/internal/sync"
	"github.com/prism-vault/prism/style"
	"github.com/prism-vault/prism/switcher"
	"github.com/prism-vault/prism/util"
	"github.com/prism-vault/prism/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(syncCmd)
	addSelectionFlags(syncCmd)
	syncCmd.Flags().BoolP("last", "l", false, "Show the outcome of the last synchronization instead of running one")
	syncCmd.Flags().BoolP("json", "j", false, "Format the outcome as JSON")
}

// syncCmd pushes a resolved theme to the host stores without touching the selection.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Propagate the active theme to the appearance and plugin stores",
	Run: func(cmd *cobra.Command, args []string) {
		asJson := lo.Must(cmd.Flags().GetBool("json"))

		if lo.Must(cmd.Flags().GetBool("last")) {
			report, ok, err := themesync.NewReportStore(where.SyncReport()).Last()
			handleErr(err)
			if !ok {
				handleErr(fmt.Errorf("no synchronization recorded yet"))
			}
			if asJson {
				handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(report))
				return
			}
			printReport(cmd, report)
			return
		}

		var (
			ctx = cmd.Context()
			sel = selectionFromFlags(cmd)
			e   = getEngine()
		)

		erase := util.PrintErasable(fmt.Sprintf("%s Syncing %s...", icon.Get(icon.Progress), sel.ThemeID))
		resolved := e.Resolver.Resolve(ctx, sel.ThemeID, sel.ColorOverrideID)
		result := e.Sync.Sync(ctx, switcher.WithHostAccent(resolved, e.Resolver.Mode()))
		erase()

		report := themesync.NewReport(resolved.ID(), result)
		if asJson {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(report))
		} else {
			printReport(cmd, report)
		}

		if !result.OK() {
			cmd.PrintErrf(
				"%s %s failed\n",
				style.Fg(color.Red)(icon.Get(icon.Fail)),
				util.Quantify(len(result.Failed()), "store", "stores"),
			)
			os.Exit(1)
		}
	},
}
