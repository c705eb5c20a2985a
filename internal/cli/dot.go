package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/consolidated/pkg/cache"
	"github.com/matzehuels/consolidated/pkg/errors"
	"github.com/matzehuels/consolidated/pkg/pipeline"
	"github.com/matzehuels/consolidated/pkg/render"
	"github.com/matzehuels/consolidated/pkg/render/nodelink"
)

// dotOptions holds the flags of the dot command.
type dotOptions struct {
	highlight string
	format    string
	output    string
	rankdir   string
	color     string
	scale     float64
	noCache   bool
}

// dotCommand creates the dot command for rendering the hierarchy.
func (c *CLI) dotCommand() *cobra.Command {
	var opts dotOptions

	cmd := &cobra.Command{
		Use:   "dot <file>",
		Short: "Render the hierarchy as a node-link diagram",
		Long: `Render the hierarchy as a Graphviz node-link diagram.

With --highlight, the node and everything below it are filled. Output
formats are dot (no rendering), svg (built-in Graphviz), and pdf or png
(require rsvg-convert). Defaults for --output-format, --rankdir and --color
come from the [dot] section of the config file.`,
		Example: `  consolidated dot org.toml -f dot
  consolidated dot org.toml --highlight 2 -o org.svg
  consolidated dot org.toml -f png --scale 2 -o org.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyDotConfig(cmd, &opts)
			if err := render.ValidateFormat(opts.format); err != nil {
				return errors.Wrap(errors.ErrCodeUnsupported, err, "dot")
			}

			data, err := c.cachedDiagram(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}

			if opts.output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(opts.output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", opts.output, err)
			}
			printFile(cmd.ErrOrStderr(), opts.output)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.highlight, "highlight", "", "node (id or label) whose descendants are filled")
	cmd.Flags().StringVarP(&opts.format, "output-format", "f", "", "output format: dot, svg, pdf, png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.rankdir, "rankdir", "", "graph direction: TB, LR, BT, RL")
	cmd.Flags().StringVar(&opts.color, "color", "", "highlight fill color")
	cmd.Flags().Float64Var(&opts.scale, "scale", 1, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "render even if a cached diagram exists")
	return cmd
}

// applyDotConfig fills unset flags from the config file.
func (c *CLI) applyDotConfig(cmd *cobra.Command, opts *dotOptions) {
	flags := cmd.Flags()
	if !flags.Changed("output-format") {
		opts.format = c.Config.Dot.Format
	}
	if !flags.Changed("rankdir") {
		opts.rankdir = c.Config.Dot.RankDir
	}
	if !flags.Changed("color") {
		opts.color = c.Config.Dot.HighlightColor
	}
	if opts.format == "" {
		opts.format = render.FormatSVG
	}
}

// cachedDiagram renders the diagram for the edge file at path, reusing a
// cached rendering of the same file contents and options. DOT output is
// never cached.
func (c *CLI) cachedDiagram(ctx context.Context, path string, opts dotOptions) ([]byte, error) {
	if opts.format == render.FormatDOT {
		return c.renderFile(ctx, path, opts)
	}

	input, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, err
	}
	key := cache.ArtifactKey(input, cache.ArtifactKeyOpts{
		Format:         opts.format,
		Highlight:      opts.highlight,
		HighlightColor: opts.color,
		RankDir:        opts.rankdir,
		Scale:          opts.scale,
		InputFormat:    c.format,
	})

	store := c.newCache(opts.noCache)
	defer store.Close()

	if data, ok, err := store.Get(ctx, key); err != nil {
		c.Logger.Warn("cache read failed", "err", err)
	} else if ok {
		c.Logger.Debug("using cached diagram", "path", path, "format", opts.format)
		return data, nil
	}

	data, err := c.renderFile(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	if err := store.Set(ctx, key, data, c.Config.Cache.TTL.Duration); err != nil {
		c.Logger.Warn("cache write failed", "err", err)
	}
	return data, nil
}

func (c *CLI) renderFile(ctx context.Context, path string, opts dotOptions) ([]byte, error) {
	result, err := c.loadIndex(ctx, path)
	if err != nil {
		return nil, err
	}
	return renderDiagram(ctx, result, opts)
}

func renderDiagram(ctx context.Context, result *pipeline.Result, opts dotOptions) ([]byte, error) {
	nopts := nodelink.Options{HighlightColor: opts.color, RankDir: opts.rankdir}
	if opts.highlight != "" {
		id, err := resolveNode(result.Forest, opts.highlight)
		if err != nil {
			return nil, err
		}
		nopts.Highlight = &id
	}

	dot := nodelink.ToDOT(result.Forest, result.Map, nopts)
	if opts.format == render.FormatDOT {
		return []byte(dot), nil
	}

	svg, err := nodelink.RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.Convert(ctx, svg, opts.format, opts.scale)
}
