package cmd

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dsc/cli/internal/format"
)

var fileExistsEndpoint endpointFlags

var fileExistsCmd = &cobra.Command{
	Use:   "file-exists <file>...",
	Short: "Check if files are already stored on the server",
	Long: `Check by SHA-256 checksum whether files already exist on the server.
The check runs against the source, integration or session endpoint,
selected by the same flags as upload.

Examples:
  dsc file-exists scan.pdf
  dsc file-exists --source abc123 *.pdf
  dsc file-exists -i -c family --header 'Docspell-Integration:secret' scan.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFileExists,
}

func init() {
	rootCmd.AddCommand(fileExistsCmd)
	fileExistsEndpoint.register(fileExistsCmd)
}

// checksumFile computes the SHA-256 checksum the server indexes files
// by.
func checksumFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("cannot read %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("cannot read %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func runFileExists(cmd *cobra.Command, args []string) error {
	ctx, err := newCmdContext()
	if err != nil {
		return err
	}
	sel, cred, err := fileExistsEndpoint.selectEndpoint(ctx)
	if err != nil {
		return err
	}

	type fileResult struct {
		File   string `json:"file"`
		Exists bool   `json:"exists"`
		Items  int    `json:"items"`
	}
	var results []fileResult

	table := format.Table{Header: []string{"FILE", "EXISTS", "ITEMS"}}
	for _, path := range args {
		sha, err := checksumFile(path)
		if err != nil {
			return err
		}
		check, err := ctx.client.FileExists(sel, cred, sha)
		if err != nil {
			return err
		}
		results = append(results, fileResult{File: path, Exists: check.Exists, Items: len(check.Items)})
		table.Rows = append(table.Rows, []string{
			path,
			strconv.FormatBool(check.Exists),
			strconv.Itoa(len(check.Items)),
		})
	}
	return ctx.write(results, table)
}
