package cmd

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/prism-vault/prism/key"
	"github.com/prism-vault/prism/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const noOverride = "none"

func init() {
	rootCmd.AddCommand(overrideCmd)
	overrideCmd.Flags().BoolP("clear", "c", false, "Remove the color override")
	overrideCmd.Flags().Bool("no-sync", false, "Do not propagate the theme to the host stores")
}

// overrideCmd changes the color override and keeps the current theme.
var overrideCmd = &cobra.Command{
	Use:               "override [scheme]",
	Short:             "Set or clear the color override of the active theme",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionSchemes,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			ctx    = cmd.Context()
			noSync = lo.Must(cmd.Flags().GetBool("no-sync"))
			name   string
		)

		switch {
		case lo.Must(cmd.Flags().GetBool("clear")):
			name = ""
		case len(args) == 1:
			name = args[0]
		case util.IsInteractive():
			name = pickScheme(cmd)
		default:
			handleErr(cmd.Help())
			return
		}

		if name == noOverride {
			name = ""
		}
		if name != "" {
			checkScheme(cmd, name)
		}

		shouldSync := viper.GetBool(key.SyncOnSwitch) && !noSync
		if !getEngine().Switcher.SetColorOverride(ctx, name, shouldSync) {
			os.Exit(1)
		}
	},
}

func pickScheme(cmd *cobra.Command) string {
	names, err := getEngine().Resolver.AvailableColorSchemes(cmd.Context())
	handleErr(err)

	prompt := &survey.Select{
		Message: "Color override",
		Options: append([]string{noOverride}, names...),
		Default: noOverride,
	}
	if current := currentSelection(cmd.Context()).ColorOverrideID; current != "" && lo.Contains(names, current) {
		prompt.Default = current
	}

	var answer string
	handleErr(survey.AskOne(prompt, &answer))
	return answer
}
