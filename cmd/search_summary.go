package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dsc/cli/internal/format"
)

var searchSummaryCmd = &cobra.Command{
	Use:     "search-summary <query>",
	Aliases: []string{"summary"},
	Short:   "Show aggregate statistics for a query",
	Long: `Show the number of matching items and tag counts for a search query
instead of the items themselves. Requires a session.

Examples:
  dsc search-summary 'year:2024'
  dsc summary 'tag:invoice'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchSummary,
}

func init() {
	rootCmd.AddCommand(searchSummaryCmd)
}

func runSearchSummary(cmd *cobra.Command, args []string) error {
	ctx, err := newCmdContext()
	if err != nil {
		return err
	}
	cred, err := ctx.credential()
	if err != nil {
		return err
	}

	stats, err := ctx.client.SearchSummary(cred, strings.Join(args, " "))
	if err != nil {
		return err
	}

	table := format.Table{
		Header: []string{"TAG", "CATEGORY", "COUNT"},
		Rows: [][]string{
			{"(all items)", "-", strconv.Itoa(stats.Count)},
		},
	}
	for _, tc := range stats.TagCloud.Items {
		table.Rows = append(table.Rows, []string{
			tc.Tag.Name,
			orDash(tc.Tag.Category),
			strconv.Itoa(tc.Count),
		})
	}
	return ctx.write(stats, table)
}
