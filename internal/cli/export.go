package cli

import (
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/consolidated/pkg/io"
)

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write every node's descendants as JSON",
		Long: `Write the descendant set of every node with at least one descendant as
JSON, in ascending key order:

  {"keys": [{"id": 1, "label": "root", "children": [2, 3]}]}`,
		Example: `  consolidated export org.toml
  consolidated export org.toml -o index.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.loadIndex(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if output == "" {
				return pkgio.WriteJSON(result.Map, result.Forest.Labels, cmd.OutOrStdout())
			}

			prog := newProgress(c.Logger)
			if err := pkgio.ExportJSON(result.Map, result.Forest.Labels, output); err != nil {
				return err
			}
			prog.done("Exported index")
			printFile(cmd.ErrOrStderr(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}
