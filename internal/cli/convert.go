package cli

import (
	"github.com/spf13/cobra"

	"nematode/pkg/document"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <file>",
		Short: "Print a tree document (YAML, TOML or HTML) as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := document.LoadNode(args[0])
			if err != nil {
				return err
			}
			if err := document.Validate(n); err != nil {
				return err
			}
			return document.EncodeYAML(cmd.OutOrStdout(), n)
		},
	}
}
