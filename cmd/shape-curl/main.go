// Command shape-curl converts curl command lines into structured requests.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/shapestone/shape-curl/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries state shared by subcommands for one invocation.
type app struct {
	// flags
	configPath string
	format     string
	strict     bool
	verbose    bool
	workers    int

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "shape-curl",
		Short: "Convert curl command lines into structured HTTP requests",
		Long: `shape-curl reads curl commands as pasted from a terminal, API docs or a
browser's "Copy as cURL", and prints the request they describe: method,
URL, headers, body and a short display name.

Quoting, backslash escapes and line continuations are handled the way a
shell would; variables and command substitutions are never expanded.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.StringVarP(&a.format, "format", "f", "", "output format: json, yaml, curl, http or ast")
	pf.BoolVar(&a.strict, "strict", false, "reject commands that end inside quotes")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newParseCmd(a), newImportCmd(a), newRenderCmd(a))
	return rootCmd
}

// init loads configuration, applies flag overrides and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("strict") {
		cfg.Strict = a.strict
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	a.logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}
