package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig      string
	flagVerbose     int
	flagFormat      string
	flagDocspellURL string
	flagSession     string
)

var rootCmd = &cobra.Command{
	Use:   "dsc",
	Short: "dsc - Command line interface for the Docspell server",
	Long: `dsc is a command line client for the Docspell document management
server. It is mostly a wrapper around the Docspell remote api.

Configuration is read from a TOML file; the location depends on the
OS and can be overridden with --config or the DSC_CONFIG environment
variable. Command line flags take precedence over the config file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(flagVerbose)
	},
}

// Execute runs the CLI and returns the exit error, if any.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default is OS dependent; also: DSC_CONFIG)")
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "be more verbose when logging; can be repeated")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "", "output format: json, lisp, csv or tabular")
	rootCmd.PersistentFlags().StringVarP(&flagDocspellURL, "docspell-url", "d", "", "base URL of the Docspell server")
	rootCmd.PersistentFlags().StringVar(&flagSession, "session", "", "session token, overriding the stored session (also: DSC_SESSION)")
}

// setupLogging maps the repeated -v flag to a slog level: warnings by
// default, info with -v, debug with -vv.
func setupLogging(verbose int) {
	level := slog.LevelWarn
	switch {
	case verbose == 1:
		level = slog.LevelInfo
	case verbose >= 2:
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
