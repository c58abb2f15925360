package cmd

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/prism-vault/prism/settings"
	"github.com/prism-vault/prism/theme"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolP("theme", "t", false, "Print the schema of the theme catalog entries instead")
}

// schemaCmd prints JSON schemas for the documents and outputs the tool understands.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the settings document",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := jsonschema.Reflector{
			DoNotReference: true,
		}

		var schema *jsonschema.Schema
		if lo.Must(cmd.Flags().GetBool("theme")) {
			schema = reflector.Reflect([]theme.Info{})
		} else {
			schema = reflector.Reflect(&settings.Selection{})
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
