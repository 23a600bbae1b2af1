package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"sealstore/internal/app"
	sslog "sealstore/internal/log"
)

type options struct {
	configPath string
	passphrase string
	verbose    bool
}

func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd returns the sealstore command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "sealstore",
		Short:        "Named in-memory record stores with passphrase encryption",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "stores.yaml", "store configuration file")
	root.PersistentFlags().StringVarP(&opts.passphrase, "passphrase", "p", "", "passphrase for encrypted stores")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(kindsCmd(), checkCmd(opts), sealCmd(opts))
	return root
}

func (o *options) logger(w io.Writer, configured string) (*slog.Logger, error) {
	if o.verbose {
		return sslog.New(w, slog.LevelDebug), nil
	}
	level, err := sslog.ParseLevel(configured)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", configured, err)
	}
	return sslog.New(w, level), nil
}

// load reads the configuration, lets fill adjust passphrases and builds
// every store. Callers close the returned Wire.
func (o *options) load(cmd *cobra.Command, fill func(*app.Config) error) (*app.Wire, error) {
	cfg, err := app.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if fill != nil {
		if err := fill(cfg); err != nil {
			return nil, err
		}
	}

	logger, err := o.logger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger.Debug("configuration loaded", "path", o.configPath, "stores", len(cfg.Stores))

	return app.NewWire(cfg, logger)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
