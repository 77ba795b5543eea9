package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dsc/cli/internal/config"
)

var writeDefaultConfigCmd = &cobra.Command{
	Use:   "write-default-config",
	Short: "Write the default config file and exit",
	Long: `Write the default configuration to the file system and print its
location. The location depends on the OS. An existing config file is
never overwritten.

Examples:
  dsc write-default-config`,
	Args: cobra.NoArgs,
	RunE: runWriteDefaultConfig,
}

func init() {
	rootCmd.AddCommand(writeDefaultConfigCmd)
}

func runWriteDefaultConfig(cmd *cobra.Command, args []string) error {
	path, err := config.WriteDefault()
	if err != nil {
		return err
	}
	fmt.Printf("Wrote default config to %s\n", path)
	return nil
}
