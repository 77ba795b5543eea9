package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dsc/cli/internal/format"
)

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Manage upload sources",
	Long: `Commands for the sources configured in the collective. A source id
can be used with upload and file-exists without a login.

Examples:
  dsc source list`,
}

var sourceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the sources of the collective",
	Long: `List all sources configured for the logged-in collective.

Examples:
  dsc source list
  dsc -f csv source list`,
	Args: cobra.NoArgs,
	RunE: runSourceList,
}

func init() {
	rootCmd.AddCommand(sourceCmd)
	sourceCmd.AddCommand(sourceListCmd)
}

func runSourceList(cmd *cobra.Command, args []string) error {
	ctx, err := newCmdContext()
	if err != nil {
		return err
	}
	cred, err := ctx.credential()
	if err != nil {
		return err
	}

	list, err := ctx.client.Sources(cred)
	if err != nil {
		return err
	}

	table := format.Table{
		Header: []string{"ID", "NAME", "ENABLED", "COUNTER", "LANGUAGE"},
	}
	for _, st := range list.Items {
		src := st.Source
		table.Rows = append(table.Rows, []string{
			src.ID,
			src.Abbrev,
			strconv.FormatBool(src.Enabled),
			strconv.Itoa(src.Counter),
			orDash(src.Language),
		})
	}
	return ctx.write(list, table)
}
