package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"storesearch/internal/catalog"
	"storesearch/internal/search"
)

func newSearchCmd() *cobra.Command {
	var (
		category    string
		catalogURL  string
		timeout     time.Duration
		maxAttempts int
		pageSize    int
	)
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run a search against the catalog and show which step found results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client := catalog.New(ctx, catalog.Config{BaseURL: catalogURL, Timeout: timeout})
			executor := search.NewExecutor(client, nil, maxAttempts)

			result, err := executor.Execute(ctx, search.Request{
				Query:    args[0],
				Category: category,
				PageSize: pageSize,
			})
			if err != nil {
				return err
			}
			if jsonOutput(cmd) {
				return writeJSON(cmd.OutOrStdout(), result)
			}

			out := cmd.OutOrStdout()
			applied := "(none)"
			if result.AppliedCategory != nil {
				applied = *result.AppliedCategory
			}
			fmt.Fprintf(out, "step:     %s after %d queries\n", result.Step, result.Attempts)
			fmt.Fprintf(out, "category: %s\n", applied)
			if result.Banner != "" && result.AppliedCategory != nil {
				fmt.Fprintf(out, "banner:   %s\n", result.Banner)
			}
			fmt.Fprintf(out, "results:  %d\n", result.Page.Count)
			for _, p := range result.Page.Results {
				fmt.Fprintf(out, "  - %s (%s)\n", p.Name, p.Category.Slug)
			}
			return nil
		},
	}
	defaultURL := os.Getenv("CATALOG_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8000/api"
	}
	cmd.Flags().StringVarP(&category, "category", "c", "all", "Selected category")
	cmd.Flags().StringVar(&catalogURL, "catalog-url", defaultURL, "Catalog API base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Catalog request timeout")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", search.DefaultMaxCategoryAttempts, "Maximum category queries")
	cmd.Flags().IntVar(&pageSize, "page-size", 10, "Results per page")
	return cmd
}
