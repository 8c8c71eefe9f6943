// Package cli wires the cobra command tree for dpbpe: global flags, config
// and logger initialization, and the four subcommands that cover the
// vocabulary/model/encode/decode pipeline.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oalang/dpbpe/internal/config"
	"github.com/oalang/dpbpe/internal/logging"
)

// Build-time version information, injected via -ldflags at release time.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

type cliContextKey struct{}

// RootOptions holds the persistent flags shared by every subcommand.
type RootOptions struct {
	ConfigPath  string
	LogLevel    string
	MaxSubwords int
}

// RunContext carries the initialized config and logger through the command
// tree via the cobra command's context.
type RunContext struct {
	Config *config.Config
	Logger logging.Logger
}

// NewRootCommand builds the "dpbpe" root command with its persistent flags
// and all four subcommands attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "dpbpe",
		Short:   "Byte-pair-encoding subword vocabulary compiler, trainer, encoder, and decoder",
		Version: fmt.Sprintf("%s (%s)", Version, GitCommit),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initRunContext(cmd, opts)
		},
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.ConfigPath, "config", "", "YAML config file path (optional)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	pf.IntVar(&opts.MaxSubwords, "max-subwords", 0, "subword budget for train-model (overrides config, 0 = use config default)")

	cmd.AddCommand(
		newCompileVocabularyCmd(),
		newTrainModelCmd(opts),
		newEncodeCmd(),
		newDecodeCmd(),
	)

	return cmd
}

func initRunContext(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.MaxSubwords > 0 {
		cfg.Train.MaxSubwords = opts.MaxSubwords
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}

	rc := &RunContext{Config: cfg, Logger: logger}
	cmd.SetContext(context.WithValue(cmd.Context(), cliContextKey{}, rc))
	return nil
}

func runContextFrom(cmd *cobra.Command) *RunContext {
	rc, _ := cmd.Context().Value(cliContextKey{}).(*RunContext)
	if rc == nil {
		// Subcommands can be unit-tested directly without going through
		// Execute(); fall back to a usable default rather than panic.
		logger, _ := logging.New(logging.Config{Level: "info", Format: "console"})
		return &RunContext{Config: &config.Config{Train: config.TrainConfig{MaxSubwords: config.DefaultMaxSubwords}}, Logger: logger}
	}
	return rc
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
