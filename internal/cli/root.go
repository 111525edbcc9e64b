package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"nematode/internal/config"
	"nematode/internal/observability"
	"nematode/pkg/layout"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute runs the nematode CLI with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Output goes to the command's
// out and err writers so tests can capture it.
func NewRootCommand() *cobra.Command {
	var (
		cfgFile  string
		verbose  bool
		closeLog func() error
	)

	root := &cobra.Command{
		Use:          "nematode",
		Short:        "Nematode computes block box geometry for element trees",
		Long:         `Nematode lays out a tree of block elements with CSS-style margins and padding, collapsing adjoining vertical margins, and reports where every box lands.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if verbose {
				cfg.Logger.Level = "debug"
			}

			var logger *zap.Logger
			logger, closeLog = observability.New(cfg.Logger, zapcore.AddSync(cmd.ErrOrStderr()))
			layout.SetLogger(logger.Named("layout"))

			ctx := withConfig(cmd.Context(), cfg)
			ctx = withLogger(ctx, logger)
			cmd.SetContext(ctx)

			logger.Debug("Starting nematode", zap.String("version", version), zap.String("command", cmd.Name()))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			layout.SetLogger(nil)
			if closeLog != nil {
				return closeLog()
			}
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("nematode %s\ncommit: %s\n", version, commit))
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./nematode.yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGeometryCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newScriptCmd())
	root.AddCommand(newConvertCmd())

	return root
}
