package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dsc/cli/internal/format"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Work with single items",
	Long: `Commands for inspecting single items by their id.

Examples:
  dsc item get 9K6fJsiDvs4`,
}

var itemGetCmd = &cobra.Command{
	Use:   "get <item-id>",
	Short: "Show the details of one item",
	Long: `Fetch and show the full details of one item, including its
attachments. Requires a session.

Examples:
  dsc item get 9K6fJsiDvs4
  dsc -f json item get 9K6fJsiDvs4`,
	Args: cobra.ExactArgs(1),
	RunE: runItemGet,
}

func init() {
	rootCmd.AddCommand(itemCmd)
	itemCmd.AddCommand(itemGetCmd)
}

func runItemGet(cmd *cobra.Command, args []string) error {
	ctx, err := newCmdContext()
	if err != nil {
		return err
	}
	cred, err := ctx.credential()
	if err != nil {
		return err
	}

	item, err := ctx.client.ItemGet(cred, args[0])
	if err != nil {
		return err
	}

	table := format.Table{
		Header: []string{"FIELD", "VALUE"},
		Rows: [][]string{
			{"id", item.ID},
			{"name", item.Name},
			{"state", item.State},
			{"date", millisToDate(item.Date)},
			{"due", millisToDate(item.DueDate)},
			{"direction", orDash(item.Direction)},
			{"correspondent", idName(item.CorrOrg)},
			{"folder", idName(item.Folder)},
			{"tags", tagNames(item.Tags)},
		},
	}
	for _, att := range item.Attachments {
		table.Rows = append(table.Rows, []string{"attachment", att.ID + " " + att.Name})
	}
	return ctx.write(item, table)
}
