package cli

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nematode/pkg/document"
	"nematode/pkg/layout"
)

func newGeometryCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "geometry <file>",
		Short: "Print the computed geometry of a tree document",
		Long:  `Load a YAML, TOML or HTML tree, lay it out and print every element's position and size.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := loggerFromContext(cmd.Context())

			root, err := document.Load(args[0])
			if err != nil {
				return err
			}
			log.Debug("Loaded document", zap.String("path", args[0]), zap.String("root", root.TagName()))

			return writeGeometry(cmd.OutOrStdout(), root, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON snapshot instead of text")
	return cmd
}

func writeGeometry(w io.Writer, root *layout.Element, asJSON bool) error {
	if !asJSON {
		return layout.Dump(w, root)
	}
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(layout.Snapshot(root))
}
