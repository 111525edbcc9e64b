package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"nematode/pkg/script"
)

var errNoRoot = errors.New("script did not call layout.setRoot")

func newScriptCmd() *cobra.Command {
	var (
		asJSON bool
		opts   renderOpts
	)

	cmd := &cobra.Command{
		Use:   "script <file.js>",
		Short: "Build a tree with JavaScript and print its geometry",
		Long:  `Run a script against the layout API, then print the geometry of the root registered with layout.setRoot. With --output the tree is also painted to PNG.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := loggerFromContext(cmd.Context())

			engine := script.New(log.Named("script"))
			if err := engine.RunFile(args[0]); err != nil {
				return err
			}
			root := engine.Root()
			if root == nil {
				return errNoRoot
			}

			if err := writeGeometry(cmd.OutOrStdout(), root, asJSON); err != nil {
				return err
			}
			if opts.output != "" {
				return renderPNG(cmd, configFromContext(cmd.Context()), root, opts)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON snapshot instead of text")
	opts.bind(cmd, "also paint the tree to this PNG path")
	return cmd
}
