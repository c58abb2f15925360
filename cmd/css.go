package cmd

import (
	"github.com/prism-vault/prism/color"
	"github.com/prism-vault/prism/constant"
	"github.com/prism-vault/prism/cssvars"
	"github.com/prism-vault/prism/document"
	"github.com/prism-vault/prism/icon"
	"github.com/prism-vault/prism/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cssCmd)
	addSelectionFlags(cssCmd)
	cssCmd.Flags().BoolP("stdout", "s", false, "Print the snippet instead of writing it to the vault")
}

// cssCmd renders the resolved theme as CSS custom properties.
var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Export the active theme as a CSS variables snippet",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			ctx      = cmd.Context()
			sel      = selectionFromFlags(cmd)
			resolved = getEngine().Resolver.Resolve(ctx, sel.ThemeID, sel.ColorOverrideID)
		)

		if lo.Must(cmd.Flags().GetBool("stdout")) {
			cmd.Print(cssvars.Render(resolved.Props))
			return
		}

		handleErr(cssvars.Export(document.Vault().Fs(), resolved))
		cmd.Printf(
			"%s wrote %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Yellow)(constant.SnippetPath),
		)
	},
}
