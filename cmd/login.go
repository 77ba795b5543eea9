package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	loginUser     string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the Docspell server",
	Long: `Log in to the Docspell server and store the session token.

The account is given as collective/user or just the user name if both
are the same. Subsequent commands use the stored session until it
expires or 'dsc logout' is run. The session is stored per server URL.

Examples:
  dsc login
  dsc login --user family/alice
  dsc login --user alice --password secret`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginUser, "user", "u", "", "account name (collective/user)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "account password; prompted for if not given")
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx, err := newCmdContext()
	if err != nil {
		return err
	}

	account := loginUser
	password := loginPassword
	reader := bufio.NewReader(os.Stdin)

	if account == "" {
		fmt.Print("Account: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		account = strings.TrimSpace(input)
	}
	if account == "" {
		return fmt.Errorf("an account is required")
	}

	if password == "" {
		fmt.Print("Password: ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		password = strings.TrimSpace(input)
	}

	result, err := ctx.client.Login(account, password)
	if err != nil {
		return err
	}

	// A session the user believes in but that was never persisted is
	// worse than a failed login; report store errors loudly.
	if err := ctx.store.Save(ctx.client.BaseURL(), result.Token, result.ValidMs); err != nil {
		return fmt.Errorf("login succeeded but storing the session failed: %w", err)
	}

	fmt.Printf("Logged in as %s/%s\n", result.Collective, result.User)
	return nil
}
