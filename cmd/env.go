package cmd

import (
	"os"

	"github.com/prism-vault/prism/color"
	"github.com/prism-vault/prism/config"
	"github.com/prism-vault/prism/style"
	"github.com/prism-vault/prism/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only list variables set in this process")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only list variables not set in this process")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
	envCmd.SetOut(os.Stdout)
}

// envCmd lists the environment variables prism reads, with the config key
// each one overrides.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables that override the configuration",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			setOnly   = lo.Must(cmd.Flags().GetBool("set-only"))
			unsetOnly = lo.Must(cmd.Flags().GetBool("unset-only"))
			keyOf     = map[string]string{where.EnvConfigPath: "config directory"}
		)

		for _, field := range config.Default {
			keyOf[field.Env()] = field.Key
		}

		names := lo.Keys(keyOf)
		slices.Sort(names)
		for _, env := range names {
			value, present := os.LookupEnv(env)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			shown := style.Fg(color.Red)("unset")
			if present {
				shown = style.Fg(color.Green)(value)
			}
			cmd.Printf(
				"%s=%s %s\n",
				style.New().Bold(true).Foreground(color.Purple).Render(env),
				shown,
				style.Faint("# "+keyOf[env]),
			)
		}
	},
}
