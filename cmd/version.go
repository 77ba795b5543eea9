package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dsc/cli/internal/format"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show client and server version",
	Long: `Show the version of this client and of the configured Docspell
server. The server is queried without authentication.

Examples:
  dsc version`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	ctx, err := newCmdContext()
	if err != nil {
		return err
	}

	info, err := ctx.client.Version()
	if err != nil {
		return fmt.Errorf("failed to query server version: %w", err)
	}

	value := struct {
		Client string `json:"client"`
		Server string `json:"server"`
		Commit string `json:"gitCommit"`
	}{Version, info.Version, info.GitCommit}

	table := format.Table{
		Header: []string{"CLIENT", "SERVER", "COMMIT"},
		Rows:   [][]string{{Version, orDash(info.Version), orDash(info.GitCommit)}},
	}
	return ctx.write(value, table)
}
