package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dsc/cli/internal/api"
)

var (
	registerCollective string
	registerLogin      string
	registerPassword   string
	registerInvite     string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new account",
	Long: `Register a new account at the Docspell server. Depending on the
server's signup mode an invitation key may be required; it can be
created with 'dsc geninvite'.

Examples:
  dsc register --collective family --login alice --password secret
  dsc register -c family -l alice -p secret --invite KEY`,
	Args: cobra.NoArgs,
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVarP(&registerCollective, "collective", "c", "", "name of the collective to create or join")
	registerCmd.Flags().StringVarP(&registerLogin, "login", "l", "", "login name of the new account")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "password of the new account")
	registerCmd.Flags().StringVar(&registerInvite, "invite", "", "invitation key, if the server requires one")
	registerCmd.MarkFlagRequired("collective")
	registerCmd.MarkFlagRequired("login")
	registerCmd.MarkFlagRequired("password")
}

func runRegister(cmd *cobra.Command, args []string) error {
	ctx, err := newCmdContext()
	if err != nil {
		return err
	}

	result, err := ctx.client.Register(api.RegisterRequest{
		CollectiveName: registerCollective,
		Login:          registerLogin,
		Password:       registerPassword,
		Invite:         registerInvite,
	})
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("registration failed: %s", result.Message)
	}

	fmt.Println(result.Message)
	return nil
}
