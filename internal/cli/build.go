package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/consolidated/pkg/pipeline"
)

// buildCommand creates the build command for indexing an edge file.
func (c *CLI) buildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <file>",
		Short: "Build the index for an edge file and print statistics",
		Long: `Build the consolidated index for an edge file and print statistics.

The file format is detected from the extension (.json, .toml, anything else
is read as text) unless --format is given. Text files list one edge per line:

  # parent child
  1 2
  2 -> 3
  1,4

The build fails on the first edge that would give a node a second parent or
close a cycle, naming the offending line.`,
		Example: `  consolidated build org.toml
  consolidated build --format text edges.lst`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0])
		},
	}
	return cmd
}

func (c *CLI) runBuild(ctx context.Context, out, status io.Writer, path string) error {
	spinner := newSpinnerWithContext(ctx, status, "Building index...")
	spinner.Start()

	result, err := c.newRunner().Execute(ctx, c.pipelineOptions(path))
	if err != nil {
		spinner.StopWithError("Build failed")
		return err
	}
	spinner.Stop()

	printSuccess(out, "Indexed %s", path)
	printStats(out, result.Stats.KeyCount, result.Stats.EdgeCount, result.Stats.RootCount)
	printBuildDetails(out, result.Stats)
	return nil
}

func printBuildDetails(w io.Writer, s pipeline.Stats) {
	printKeyValue(w, "Data", fmt.Sprintf("%d cells", s.DataSize))
	printKeyValue(w, "Max depth", fmt.Sprintf("%d", s.MaxDepth))
	printKeyValue(w, "Load", s.LoadTime.String())
	printKeyValue(w, "Build", s.BuildTime.String())
}

// loadIndex runs the pipeline for path without any terminal decoration.
func (c *CLI) loadIndex(ctx context.Context, path string) (*pipeline.Result, error) {
	return c.newRunner().Execute(ctx, c.pipelineOptions(path))
}
