package cmd

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/prism-vault/prism/key"
	"github.com/prism-vault/prism/theme"
	"github.com/prism-vault/prism/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(switchCmd)
	switchCmd.Flags().StringP("override", "o", "", "Color override to apply with the theme")
	switchCmd.Flags().Bool("no-sync", false, "Do not propagate the theme to the host stores")
	_ = switchCmd.RegisterFlagCompletionFunc("override", completionSchemes)
}

// switchCmd persists a new selection and applies it.
var switchCmd = &cobra.Command{
	Use:               "switch [theme-id]",
	Aliases:           []string{"use"},
	Short:             "Switch the active theme",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionThemeIDs,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			ctx      = cmd.Context()
			e        = getEngine()
			sel      = currentSelection(ctx)
			override = sel.ColorOverrideID
			noSync   = lo.Must(cmd.Flags().GetBool("no-sync"))
			id       string
		)

		if cmd.Flags().Changed("override") {
			override = lo.Must(cmd.Flags().GetString("override"))
		}

		switch {
		case len(args) == 1:
			id = args[0]
		case util.IsInteractive():
			id = pickTheme(cmd, sel.ThemeID)
		default:
			handleErr(cmd.Help())
			return
		}

		if !themeExists(cmd, id) {
			handleErr(errUnknownTheme(cmd, id))
		}
		if override != "" {
			checkScheme(cmd, override)
		}

		shouldSync := viper.GetBool(key.SyncOnSwitch) && !noSync
		if !e.Switcher.SwitchTheme(ctx, id, override, shouldSync) {
			os.Exit(1)
		}
	},
}

func pickTheme(cmd *cobra.Command, current string) string {
	infos, err := getEngine().Resolver.AvailableThemes(cmd.Context())
	handleErr(err)

	ids := lo.Map(infos, func(i theme.Info, _ int) string { return i.ID })
	prompt := &survey.Select{
		Message: "Theme",
		Options: ids,
		Description: func(_ string, index int) string {
			return infos[index].Name
		},
	}
	if slices.Contains(ids, current) {
		prompt.Default = current
	}

	var answer string
	handleErr(survey.AskOne(prompt, &answer))
	return answer
}

func checkScheme(cmd *cobra.Command, name string) {
	names, err := getEngine().Resolver.AvailableColorSchemes(cmd.Context())
	handleErr(err)

	if !slices.Contains(names, name) {
		handleErr(errUnknownScheme(name, names))
	}
}
