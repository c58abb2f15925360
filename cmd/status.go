package cmd

import (
	"fmt"
	"sort"

	"github.com/prism-vault/prism/color"
	"github.com/prism-vault/prism/icon"
	themesync "github.com/prism-vault/prism/internal/sync"
	"github.com/prism-vault/prism/style"
	"github.com/prism-vault/prism/theme"
	"github.com/prism-vault/prism/where"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active theme and the outcome of the last synchronization",
	Run: func(cmd *cobra.Command, args []string) {
		printStatus(cmd)
	},
}

func printStatus(cmd *cobra.Command) {
	var (
		ctx      = cmd.Context()
		sel      = currentSelection(ctx)
		resolved = getEngine().Resolver.Resolve(ctx, sel.ThemeID, sel.ColorOverrideID)
		label    = style.New().Bold(true).Foreground(color.HiPurple).Render
	)

	cmd.Printf("%s %s\n", icon.Get(icon.Theme), style.Title(resolved.Get(theme.Name)))
	cmd.Println()

	cmd.Printf("%s    %s\n", label("Theme"), style.Fg(color.Yellow)(sel.ThemeID))
	if resolved.ID() != sel.ThemeID {
		cmd.Printf("%s %s\n", style.Fg(color.Red)(icon.Get(icon.Warn)), style.Faint("not found, showing "+resolved.ID()))
	}

	override := sel.ColorOverrideID
	if override == "" {
		override = style.Faint("none")
	}
	cmd.Printf("%s %s\n", label("Override"), override)
	cmd.Printf("%s     %s\n", label("Sync"), fmt.Sprint(sel.ShouldSync))
	cmd.Printf("%s    %s\n", label("Vault"), where.Vault())

	report, ok, err := themesync.NewReportStore(where.SyncReport()).Last()
	if err != nil || !ok {
		return
	}

	cmd.Println()
	printReport(cmd, report)
}

func printReport(cmd *cobra.Command, report themesync.Report) {
	cmd.Printf(
		"%s Last sync of %s at %s\n",
		icon.Get(icon.Sync),
		style.Fg(color.Yellow)(report.Theme),
		style.Faint(report.At.Format("2006-01-02 15:04:05")),
	)

	names := make([]string, 0, len(report.Results))
	for name := range report.Results {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if report.Results[name] {
			cmd.Printf("  %s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), name)
		} else {
			cmd.Printf("  %s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), name)
		}
	}
}
