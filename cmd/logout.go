package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dsc/cli/internal/auth"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and remove the stored session",
	Long: `Invalidate the session on the server and remove the locally stored
session token for the configured server URL.

Examples:
  dsc logout`,
	Args: cobra.NoArgs,
	RunE: runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	ctx, err := newCmdContext()
	if err != nil {
		return err
	}

	cred, err := ctx.credential()
	if errors.Is(err, auth.ErrUnauthenticated) {
		fmt.Println("Not logged in.")
		return nil
	}
	if err != nil {
		return err
	}

	// Best effort server side; the local session is removed either
	// way.
	if err := ctx.client.Logout(cred); err != nil {
		fmt.Printf("Warning: server logout failed: %v\n", err)
	}
	if err := ctx.store.Clear(ctx.client.BaseURL()); err != nil {
		return err
	}

	fmt.Println("Logged out.")
	return nil
}
