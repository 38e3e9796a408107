package cmd

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the searchctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "searchctl",
		Short:        "Inspect storefront search intent",
		Long:         "Resolve queries to search strategies, list matched keywords and related categories, and run searches against the catalog.",
		SilenceUsage: true,
	}
	root.PersistentFlags().Bool("json", false, "Output as JSON")

	root.AddCommand(newStrategyCmd())
	root.AddCommand(newKeywordsCmd())
	root.AddCommand(newRelatedCmd())
	root.AddCommand(newSearchCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
