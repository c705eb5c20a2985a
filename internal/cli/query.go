package cli

import (
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/consolidated/pkg/consolidated"
	"github.com/matzehuels/consolidated/pkg/errors"
	pkgio "github.com/matzehuels/consolidated/pkg/io"
)

// childrenCommand creates the children command.
func (c *CLI) childrenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "children <file> <node>",
		Short: "List every descendant of a node",
		Long: `List every descendant of a node, one per line in ascending order.

Nodes may be given by numeric id or by label. Unknown nodes have no
descendants.`,
		Example: `  consolidated children org.toml 1
  consolidated children org.toml engineering`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.loadIndex(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			id, err := resolveNode(result.Forest, args[1])
			if err != nil {
				return err
			}
			printNodes(cmd.OutOrStdout(), result.Forest, result.Map.Children(id).All())
			return nil
		},
	}
}

// consolidatedCommand creates the consolidated command.
func (c *CLI) consolidatedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "consolidated <file> <node>",
		Short: "List a node followed by every descendant",
		Long: `List a node followed by every descendant, one per line.

The node itself is always printed first, even when it does not appear in
the edge file.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.loadIndex(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			id, err := resolveNode(result.Forest, args[1])
			if err != nil {
				return err
			}
			printNodes(cmd.OutOrStdout(), result.Forest, result.Map.Consolidated(id).All())
			return nil
		},
	}
}

// containsCommand creates the contains command.
func (c *CLI) containsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "contains <file> <parent> <child>",
		Short: "Report whether child is below parent",
		Long: `Report whether child is a descendant of parent.

Prints "true" or "false". A node is not its own descendant.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.loadIndex(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			parent, err := resolveNode(result.Forest, args[1])
			if err != nil {
				return err
			}
			child, err := resolveNode(result.Forest, args[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Map.ContainsChild(parent, child))
			return nil
		},
	}
}

// affectedCommand creates the affected command.
func (c *CLI) affectedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "affected <file> <node>...",
		Short: "List every node affected by a change to the given nodes",
		Long: `List the union of the given nodes and all their descendants, once each
and in ascending order.`,
		Example: `  consolidated affected org.toml 2 7`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.loadIndex(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			keys := make([]uint32, 0, len(args)-1)
			for _, arg := range args[1:] {
				id, err := resolveNode(result.Forest, arg)
				if err != nil {
					return err
				}
				keys = append(keys, id)
			}
			ids := consolidated.Affected[uint32](result.Map, keys...)
			printNodes(cmd.OutOrStdout(), result.Forest, slices.Values(ids))
			return nil
		},
	}
}

// resolveNode maps a command-line argument to a node id. Numeric arguments
// are ids; anything else must match exactly one label in f.
func resolveNode(f *pkgio.Forest, arg string) (uint32, error) {
	id, err := errors.ParseNodeID(arg)
	if err == nil {
		return id, nil
	}

	var (
		found uint32
		n     int
	)
	for k, label := range f.Labels {
		if label == arg {
			found = k
			n++
		}
	}
	switch n {
	case 0:
		return 0, errors.New(errors.ErrCodeInvalidNode, "unknown node %q", arg)
	case 1:
		return found, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidNode, "label %q names %d nodes, use an id", arg, n)
	}
}

// printNodes writes one id per line, followed by a tab and the label when
// the node has one.
func printNodes(w io.Writer, f *pkgio.Forest, ids iter.Seq[uint32]) {
	for id := range ids {
		if label, ok := f.Labels[id]; ok && label != "" {
			fmt.Fprintf(w, "%d\t%s\n", id, label)
			continue
		}
		fmt.Fprintln(w, id)
	}
}
