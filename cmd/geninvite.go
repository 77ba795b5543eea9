package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var genInvitePassword string

var genInviteCmd = &cobra.Command{
	Use:   "geninvite",
	Short: "Generate a new invitation key",
	Long: `Generate a new invitation key for registering an account. The
password is the server's invite password, configured server side; it
is not a user password.

Examples:
  dsc geninvite --password invite-secret`,
	Args: cobra.NoArgs,
	RunE: runGenInvite,
}

func init() {
	rootCmd.AddCommand(genInviteCmd)
	genInviteCmd.Flags().StringVarP(&genInvitePassword, "password", "p", "", "the server's invite password")
	genInviteCmd.MarkFlagRequired("password")
}

func runGenInvite(cmd *cobra.Command, args []string) error {
	ctx, err := newCmdContext()
	if err != nil {
		return err
	}

	result, err := ctx.client.GenInvite(genInvitePassword)
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("generating invite failed: %s", result.Message)
	}

	fmt.Println(result.Key)
	return nil
}
