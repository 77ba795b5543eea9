package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var adminSecret string

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Server administration commands",
	Long: `Commands that require the server's admin secret, configured in the
server's configuration file. The secret is taken from --admin-secret
or the admin_secret config field.

Examples:
  dsc admin --admin-secret xyz reset-password family/alice
  dsc admin recreate-index`,
}

var adminResetPasswordCmd = &cobra.Command{
	Use:   "reset-password <account>",
	Short: "Reset the password of an account",
	Long: `Reset the password of the given account (collective/user). The new
password is generated by the server and printed.

Examples:
  dsc admin reset-password family/alice`,
	Args: cobra.ExactArgs(1),
	RunE: runAdminResetPassword,
}

var adminRecreateIndexCmd = &cobra.Command{
	Use:   "recreate-index",
	Short: "Re-create the full-text index",
	Long: `Drop and re-create the full-text search index for all collectives.
This may take a while; the server processes it in the background.

Examples:
  dsc admin recreate-index`,
	Args: cobra.NoArgs,
	RunE: runAdminRecreateIndex,
}

var adminGeneratePreviewsCmd = &cobra.Command{
	Use:   "generate-previews",
	Short: "Regenerate all preview images",
	Long: `Regenerate the preview images of all attachments, for example after
changing the preview size in the server configuration.

Examples:
  dsc admin generate-previews`,
	Args: cobra.NoArgs,
	RunE: runAdminGeneratePreviews,
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.PersistentFlags().StringVar(&adminSecret, "admin-secret", "", "the admin secret; defaults to admin_secret from the config file")
	adminCmd.AddCommand(adminResetPasswordCmd)
	adminCmd.AddCommand(adminRecreateIndexCmd)
	adminCmd.AddCommand(adminGeneratePreviewsCmd)
}

// effectiveAdminSecret applies the flag-over-config precedence.
func effectiveAdminSecret(ctx *cmdContext) string {
	if adminSecret != "" {
		return adminSecret
	}
	return ctx.cfg.AdminSecret
}

func runAdminResetPassword(cmd *cobra.Command, args []string) error {
	ctx, err := newCmdContext()
	if err != nil {
		return err
	}

	result, err := ctx.client.ResetPassword(effectiveAdminSecret(ctx), args[0])
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("password reset failed: %s", result.Message)
	}

	fmt.Printf("New password: %s\n", result.NewPassword)
	return nil
}

func runAdminRecreateIndex(cmd *cobra.Command, args []string) error {
	ctx, err := newCmdContext()
	if err != nil {
		return err
	}

	result, err := ctx.client.RecreateIndex(effectiveAdminSecret(ctx))
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("recreating index failed: %s", result.Message)
	}

	fmt.Println(result.Message)
	return nil
}

func runAdminGeneratePreviews(cmd *cobra.Command, args []string) error {
	ctx, err := newCmdContext()
	if err != nil {
		return err
	}

	result, err := ctx.client.GeneratePreviews(effectiveAdminSecret(ctx))
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("generating previews failed: %s", result.Message)
	}

	fmt.Println(result.Message)
	return nil
}
