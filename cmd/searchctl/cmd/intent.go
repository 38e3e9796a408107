package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"storesearch/internal/intent"
)

func newStrategyCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "strategy <query>",
		Short: "Resolve the search strategy for a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := intent.Resolve(args[0], category)
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), s)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "search type: %s\n", s.SearchType)
			fmt.Fprintf(out, "primary:     %s\n", orNone(s.Primary()))
			fmt.Fprintf(out, "fallback:    %s\n", orNone(strings.Join(s.FallbackCategories, ", ")))
			if b := s.Banner(); b != "" {
				fmt.Fprintf(out, "banner:      %s\n", b)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", intent.AllCategories, "Selected category")
	return cmd
}

func newKeywordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keywords <query>",
		Short: "Show the keywords extracted from a query and their categories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keywords := intent.ExtractKeywords(args[0])
			categories := intent.FindCategoriesForQuery(args[0])
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), map[string][]string{
					"keywords":   keywords,
					"categories": categories,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "keywords:   %s\n", orNone(strings.Join(keywords, ", ")))
			fmt.Fprintf(out, "categories: %s\n", orNone(strings.Join(categories, ", ")))
			return nil
		},
	}
}

func newRelatedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "related <category>",
		Short: "List the categories related to a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			related := intent.RelatedCategories(args[0])
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), related)
			}
			for _, c := range related {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
