package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dsc/cli/internal/uploads"
	"github.com/dsc/cli/internal/watch"
)

var (
	watchEndpoint   endpointFlags
	watchMeta       uploadMetaFlags
	watchRecursive  bool
	watchMatches    string
	watchNotMatches string
	watchDelete     bool
	watchDebounce   time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>...",
	Short: "Watch directories and upload new files",
	Long: `Watch one or more directories and upload files once they stop
changing. The loop runs until interrupted; failed uploads are retried
with backoff and never stop the watch.

Endpoint and item options work like with upload, except that every
file always becomes its own item.

Examples:
  dsc watch ~/scans
  dsc watch --recursive --matches '*.pdf' ~/scans
  dsc watch -i -c family --header 'Docspell-Integration:secret' /inbox
  dsc watch --delete --tag scanned ~/scans`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchEndpoint.register(watchCmd)
	watchMeta.register(watchCmd)
	watchCmd.Flags().BoolVarP(&watchRecursive, "recursive", "r", false, "also watch subdirectories")
	watchCmd.Flags().StringVar(&watchMatches, "matches", "", "only upload files matching this glob")
	watchCmd.Flags().StringVar(&watchNotMatches, "not-matches", "", "skip files matching this glob")
	watchCmd.Flags().BoolVar(&watchDelete, "delete", false, "delete files after a successful upload")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "quiet period a file must pass before it is uploaded")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, err := newCmdContext()
	if err != nil {
		return err
	}

	meta := watchMeta.meta()
	if meta.SingleItem {
		return fmt.Errorf("--single-item cannot be used with watch: files arrive one by one")
	}
	sel, cred, err := watchEndpoint.selectEndpoint(ctx)
	if err != nil {
		return err
	}

	// The wire meta is fixed for the whole watch; validate it once up
	// front by planning a probe-free build.
	wireMeta, err := uploads.WireMeta(meta)
	if err != nil {
		return err
	}

	w, err := watch.New(args, watch.Options{
		Recursive:  watchRecursive,
		Matches:    watchMatches,
		NotMatches: watchNotMatches,
		Debounce:   watchDebounce,
		Delete:     watchDelete,
	}, func(runCtx context.Context, path string) error {
		result, err := ctx.client.Upload(sel, cred, wireMeta, []string{path})
		if err != nil {
			return err
		}
		if !result.Success {
			return fmt.Errorf("upload rejected: %s", result.Message)
		}
		return nil
	})
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return w.Run(runCtx)
}
