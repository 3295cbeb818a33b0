package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/itsmkb/internal/config"
	"github.com/kailas-cloud/itsmkb/internal/logger"
)

// annotationNoStore marks commands that run without opening the item store.
const annotationNoStore = "itsmkb/no-store"

// cli carries the flag values and the lazily built app of one invocation.
type cli struct {
	configPath string
	env        string
	verbose    bool

	app *app
	// ownsApp is false when the app was injected and must not be closed.
	ownsApp bool
}

// close releases the app built by bootstrap. Injected apps are left open.
func (c *cli) close() {
	if c.ownsApp && c.app != nil {
		c.app.close()
		c.app = nil
	}
}

// newRootCmd builds the command tree. A cli with an app already set skips bootstrap.
func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "itsmkb",
		Short: "ITSM knowledge base: classify, store and search service-management records",
		Long: `itsmkb keeps a knowledge base of IT service management records
(incidents, problems, changes, releases and requests).

It classifies free text into an ITSM category with a weighted keyword
model, stores items in memory, SQLite, Redis or Valkey, and searches them
with full-text relevance, structured filters, facets and similarity.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationNoStore] == "true" || c.app != nil {
				return nil
			}
			return c.bootstrap(cmd)
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a YAML config file (default: config/<env>.yaml)")
	root.PersistentFlags().StringVar(&c.env, "env", "", "environment name (default: $ENV or local)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(
		newClassifyCmd(c),
		newSuggestTypeCmd(c),
		newExplainCmd(c),
		newTypesCmd(c),
		newSearchCmd(c),
		newQueryCmd(c),
		newFacetsCmd(c),
		newSuggestCmd(c),
		newSimilarCmd(c),
		newAddCmd(c),
		newDeleteCmd(c),
		newImportCmd(c),
		newExportCmd(c),
		newClearCmd(c),
		newInfoCmd(c),
		newHealthCmd(c),
		newMetricsCmd(c),
		newVersionCmd(),
	)
	return root
}

// bootstrap loads configuration, builds the logger and opens the store.
func (c *cli) bootstrap(cmd *cobra.Command) error {
	env := c.env
	if env == "" {
		env = config.GetEnv()
	}

	var (
		cfg config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.LoadFile(c.configPath)
	} else {
		cfg, err = config.Load(env)
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	opts := logger.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format}
	if c.verbose {
		opts.Level = "debug"
	}
	log, err := logger.NewLogger(env, opts)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	ctx := logger.ContextWithLogger(cmd.Context(), log)
	ctx = logger.With(ctx, zap.String("command", cmd.Name()))
	cmd.SetContext(ctx)

	store, err := openStore(ctx, cfg.Storage, log)
	if err != nil {
		_ = log.Sync()
		return err
	}

	a, err := newApp(cfg, store, log)
	if err != nil {
		store.Close()
		_ = log.Sync()
		return err
	}
	c.app = a
	c.ownsApp = true
	return nil
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// openInput opens path for reading; "-" or empty reads stdin.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}
