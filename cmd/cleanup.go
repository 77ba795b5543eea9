package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cleanupEndpoint endpointFlags
	cleanupDelete   bool
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup <file>...",
	Short: "Remove local files that already exist on the server",
	Long: `Check files against the server like file-exists and delete the local
copies of those already stored. Without --delete only a dry run is
performed and the files that would be removed are printed.

Examples:
  dsc cleanup ~/scans/*.pdf
  dsc cleanup --delete --source abc123 ~/scans/*.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCleanup,
}

func init() {
	rootCmd.AddCommand(cleanupCmd)
	cleanupEndpoint.register(cleanupCmd)
	cleanupCmd.Flags().BoolVar(&cleanupDelete, "delete", false, "actually delete the files instead of a dry run")
}

func runCleanup(cmd *cobra.Command, args []string) error {
	ctx, err := newCmdContext()
	if err != nil {
		return err
	}
	sel, cred, err := cleanupEndpoint.selectEndpoint(ctx)
	if err != nil {
		return err
	}

	removed := 0
	for _, path := range args {
		sha, err := checksumFile(path)
		if err != nil {
			return err
		}
		check, err := ctx.client.FileExists(sel, cred, sha)
		if err != nil {
			return err
		}
		if !check.Exists {
			continue
		}

		if !cleanupDelete {
			fmt.Printf("Would delete %s\n", path)
			continue
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to delete %s: %w", path, err)
		}
		fmt.Printf("Deleted %s\n", path)
		removed++
	}

	if cleanupDelete {
		fmt.Printf("Deleted %d file(s).\n", removed)
	}
	return nil
}
