package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dsc/cli/internal/uploads"
)

// uploadMetaFlags are the item metadata flags shared by upload and
// watch.
type uploadMetaFlags struct {
	singleItem bool
	direction  string
	folder     string
	allowDupes bool
	tags       []string
	fileFilter string
	language   string
}

func (f *uploadMetaFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.singleItem, "single-item", false, "upload all files as one single item instead of one item per file")
	cmd.Flags().StringVar(&f.direction, "direction", "", "direction of the items: in or out")
	cmd.Flags().StringVar(&f.folder, "folder", "", "folder to associate with the new items")
	cmd.Flags().BoolVar(&f.allowDupes, "allow-dupes", false, "skip the server side duplicate check")
	cmd.Flags().StringArrayVar(&f.tags, "tag", nil, "tag to associate, by name or id; can be repeated")
	cmd.Flags().StringVar(&f.fileFilter, "file-filter", "", "glob applied when unpacking archives like zip or eml files")
	cmd.Flags().StringVarP(&f.language, "language", "l", "", "language of the documents")
}

func (f *uploadMetaFlags) meta() uploads.Meta {
	return uploads.Meta{
		SingleItem: f.singleItem,
		Direction:  f.direction,
		Folder:     f.folder,
		AllowDupes: f.allowDupes,
		Tags:       f.tags,
		FileFilter: f.fileFilter,
		Language:   f.language,
	}
}

var (
	uploadEndpoint   endpointFlags
	uploadMeta       uploadMetaFlags
	uploadTraverse   bool
	uploadMatches    string
	uploadNotMatches string
)

var uploadCmd = &cobra.Command{
	Use:     "upload <file>...",
	Aliases: []string{"up"},
	Short:   "Upload files to the server",
	Long: `Upload files to the Docspell server. By default every file becomes
its own item; with --single-item all files form one item. Directories
require --traverse, which walks them recursively and cannot be
combined with --single-item.

Without --integration the files go to a source (--source flag or the
configured default) or, lacking both, through the logged-in session.

Examples:
  dsc upload scan.pdf
  dsc up --single-item page1.pdf page2.pdf
  dsc up --traverse --matches '*.pdf' ~/scans
  dsc up -i -c family --basic user:pass invoice.pdf
  dsc up --tag invoice --tag 2024 --direction in scan.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadEndpoint.register(uploadCmd)
	uploadMeta.register(uploadCmd)
	uploadCmd.Flags().BoolVar(&uploadTraverse, "traverse", false, "recursively upload directory contents")
	uploadCmd.Flags().StringVar(&uploadMatches, "matches", "", "only upload traversed files matching this glob")
	uploadCmd.Flags().StringVar(&uploadNotMatches, "not-matches", "", "skip traversed files matching this glob")
}

func runUpload(cmd *cobra.Command, args []string) error {
	ctx, err := newCmdContext()
	if err != nil {
		return err
	}

	meta := uploadMeta.meta()
	meta.Traverse = uploadTraverse
	meta.Matches = uploadMatches
	meta.NotMatches = uploadNotMatches

	// Plan before touching the network so option conflicts fail fast.
	plan, err := uploads.Build(args, meta)
	if err != nil {
		return err
	}
	sel, cred, err := uploadEndpoint.selectEndpoint(ctx)
	if err != nil {
		return err
	}

	for _, files := range plan.Requests {
		result, err := ctx.client.Upload(sel, cred, plan.Meta, files)
		if err != nil {
			return err
		}
		if !result.Success {
			return fmt.Errorf("upload failed: %s", result.Message)
		}
		for _, f := range files {
			fmt.Printf("Uploaded %s\n", f)
		}
	}
	return nil
}
