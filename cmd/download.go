package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dsc/cli/internal/api"
	"github.com/dsc/cli/internal/auth"
)

var (
	downloadTarget    string
	downloadLimit     int
	downloadOverwrite bool
)

var downloadCmd = &cobra.Command{
	Use:   "download <query>",
	Short: "Download attachments of matching items",
	Long: `Search for items and download the original files of their
attachments into the target directory. Files that already exist there
are skipped unless --overwrite is given. Requires a session.

Examples:
  dsc download 'tag:invoice' --target ./invoices
  dsc download --limit 100 --overwrite 'year:2024'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDownload,
}

func init() {
	rootCmd.AddCommand(downloadCmd)
	downloadCmd.Flags().StringVarP(&downloadTarget, "target", "t", ".", "directory to store downloaded files in")
	downloadCmd.Flags().IntVar(&downloadLimit, "limit", 50, "maximum number of items to consider")
	downloadCmd.Flags().BoolVar(&downloadOverwrite, "overwrite", false, "overwrite files that already exist locally")
}

func runDownload(cmd *cobra.Command, args []string) error {
	ctx, err := newCmdContext()
	if err != nil {
		return err
	}
	cred, err := ctx.credential()
	if err != nil {
		return err
	}

	result, err := ctx.client.Search(cred, api.SearchRequest{
		Query:       strings.Join(args, " "),
		Limit:       downloadLimit,
		WithDetails: true,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(downloadTarget, 0755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}

	downloaded, skipped := 0, 0
	for _, group := range result.Groups {
		for _, item := range group.Items {
			for _, att := range item.Attachments {
				wrote, err := downloadAttachment(ctx, cred, att)
				if err != nil {
					return err
				}
				if wrote {
					downloaded++
				} else {
					skipped++
				}
			}
		}
	}

	fmt.Printf("Downloaded %d file(s), skipped %d existing.\n", downloaded, skipped)
	return nil
}

// downloadAttachment fetches one attachment unless a file of the same
// name already exists. Returns whether a file was written.
func downloadAttachment(ctx *cmdContext, cred auth.Credential, att api.AttachmentLight) (bool, error) {
	resp, name, err := ctx.client.Attachment(cred, att.ID)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	path := filepath.Join(downloadTarget, filepath.Base(name))
	if !downloadOverwrite {
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("Skipping %s: already exists\n", path)
			return false, nil
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(path)
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("Downloaded %s\n", path)
	return true, nil
}
