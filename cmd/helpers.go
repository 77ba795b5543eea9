package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dsc/cli/internal/api"
	"github.com/dsc/cli/internal/auth"
	"github.com/dsc/cli/internal/config"
	"github.com/dsc/cli/internal/format"
)

// EnvSession overrides the stored session token, like the --session
// flag but for non-interactive use.
const EnvSession = "DSC_SESSION"

// cmdContext bundles the per-invocation state every command needs:
// the loaded config with flag overrides applied, the session store,
// the credential resolver and the API client.
type cmdContext struct {
	cfg      *config.Config
	format   format.Format
	store    auth.SessionStore
	resolver auth.Resolver
	client   *api.Client
}

// newCmdContext loads the configuration and applies the precedence
// rules: CLI flag over environment over config file over default.
func newCmdContext() (*cmdContext, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if flagDocspellURL != "" {
		cfg.DocspellURL = flagDocspellURL
	}
	if cfg.DocspellURL == "" {
		return nil, fmt.Errorf("no docspell url: set --docspell-url or docspell_url in the config file")
	}

	formatName := cfg.DefaultFormat
	if flagFormat != "" {
		formatName = flagFormat
	}
	if formatName == "" {
		formatName = string(format.Tabular)
	}
	outFormat, err := format.Parse(formatName)
	if err != nil {
		return nil, err
	}

	store, err := auth.DefaultFileStore()
	if err != nil {
		return nil, err
	}

	override := flagSession
	if override == "" {
		override = os.Getenv(EnvSession)
	}

	return &cmdContext{
		cfg:      cfg,
		format:   outFormat,
		store:    store,
		resolver: auth.Resolver{Store: store, Override: override},
		client:   api.New(cfg.DocspellURL, store),
	}, nil
}

// credential resolves the session credential for commands that require
// a login.
func (c *cmdContext) credential() (auth.Credential, error) {
	return c.resolver.Resolve(c.client.BaseURL())
}

// write renders value/table in the selected output format to stdout.
func (c *cmdContext) write(value any, table format.Table) error {
	return format.Write(os.Stdout, c.format, value, table)
}

// endpointFlags are the flags of commands that can address the
// integration endpoint or a source.
type endpointFlags struct {
	basic       string
	header      string
	integration bool
	collective  string
	source      string
}

func (f *endpointFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.basic, "basic", "", "integration endpoint Basic auth as a username:password pair")
	cmd.Flags().StringVar(&f.header, "header", "", "integration endpoint credential as a Header:Value pair")
	cmd.Flags().BoolVarP(&f.integration, "integration", "i", false, "use the integration endpoint")
	cmd.Flags().StringVarP(&f.collective, "collective", "c", "", "the collective, required for the integration endpoint")
	cmd.Flags().StringVar(&f.source, "source", "", "source id to use; defaults to the configured default_source_id")
}

// opts parses the name:value flags into validated endpoint options.
func (f *endpointFlags) opts() (auth.EndpointOpts, error) {
	opts := auth.EndpointOpts{
		Integration: f.integration,
		Collective:  f.collective,
		Source:      f.source,
	}
	if f.basic != "" {
		pair, err := auth.ParseNameVal(f.basic)
		if err != nil {
			return auth.EndpointOpts{}, fmt.Errorf("invalid --basic value: %w", err)
		}
		opts.Basic = &pair
	}
	if f.header != "" {
		pair, err := auth.ParseNameVal(f.header)
		if err != nil {
			return auth.EndpointOpts{}, fmt.Errorf("invalid --header value: %w", err)
		}
		opts.Header = &pair
	}
	return opts, nil
}

// selectEndpoint validates the endpoint flags and resolves the credential the
// selected access path needs. For session access the session is
// resolved here so the usage checks always run before any network call.
func (f *endpointFlags) selectEndpoint(ctx *cmdContext) (auth.EndpointSelection, auth.Credential, error) {
	opts, err := f.opts()
	if err != nil {
		return auth.EndpointSelection{}, auth.Credential{}, err
	}

	hasSession := ctx.resolver.HasSession(ctx.client.BaseURL())
	sel, err := opts.Select(ctx.cfg.DefaultSourceID, hasSession)
	if err != nil {
		return auth.EndpointSelection{}, auth.Credential{}, err
	}

	cred := auth.Anonymous()
	if sel.Mode == auth.AccessSession {
		cred, err = ctx.credential()
		if err != nil {
			return auth.EndpointSelection{}, auth.Credential{}, err
		}
	}
	return sel, cred, nil
}

// millisToDate renders a Docspell epoch-milliseconds timestamp as a
// date, or "-" when unset.
func millisToDate(ms int64) string {
	if ms <= 0 {
		return "-"
	}
	return time.UnixMilli(ms).UTC().Format("2006-01-02")
}

// tagNames joins tag names for table display.
func tagNames(tags []api.Tag) string {
	if len(tags) == 0 {
		return "-"
	}
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}
	return strings.Join(names, ",")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func idName(ref *api.IdName) string {
	if ref == nil {
		return "-"
	}
	return ref.Name
}
