package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dsc/cli/internal/api"
	"github.com/dsc/cli/internal/format"
)

var (
	searchLimit       int
	searchOffset      int
	searchWithDetails bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for items",
	Long: `Search for items using Docspell's query language. Requires a
session; run 'dsc login' first.

Examples:
  dsc search 'tag:invoice'
  dsc search --limit 5 'corr:acme year:2024'
  dsc search --with-details 'name:*receipt*'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "maximum number of results")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "number of results to skip")
	searchCmd.Flags().BoolVar(&searchWithDetails, "with-details", false, "include attachment details in the result")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx, err := newCmdContext()
	if err != nil {
		return err
	}
	cred, err := ctx.credential()
	if err != nil {
		return err
	}

	result, err := ctx.client.Search(cred, api.SearchRequest{
		Query:       strings.Join(args, " "),
		Limit:       searchLimit,
		Offset:      searchOffset,
		WithDetails: searchWithDetails,
	})
	if err != nil {
		return err
	}

	table := format.Table{
		Header: []string{"ID", "NAME", "DATE", "STATE", "CORRESPONDENT", "TAGS"},
	}
	for _, group := range result.Groups {
		for _, item := range group.Items {
			table.Rows = append(table.Rows, []string{
				item.ID,
				item.Name,
				millisToDate(item.Date),
				item.State,
				idName(item.CorrOrg),
				tagNames(item.Tags),
			})
		}
	}
	return ctx.write(result, table)
}
