package main

import (
	"encoding/json"
	"fmt"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/testutil"
	"github.com/spf13/cobra"
)

var exportSchemaCmd = &cobra.Command{
	Use:   "export-schema",
	Short: "Print the GraphQL schema as introspection JSON",
	Long: `Run the standard introspection query against the board schema and
print the result as JSON, for use by client code generators.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result := graphql.Do(graphql.Params{
			Schema:        cliApp.Module.Schema,
			RequestString: testutil.IntrospectionQuery,
		})
		if len(result.Errors) > 0 {
			return fmt.Errorf("introspection failed: %v", result.Errors)
		}

		out, err := json.MarshalIndent(result.Data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode schema: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportSchemaCmd)
}
