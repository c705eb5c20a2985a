package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/consolidated/pkg/consolidated"
	"github.com/matzehuels/consolidated/pkg/errors"
	"github.com/matzehuels/consolidated/pkg/io"
	"github.com/matzehuels/consolidated/pkg/observability"
)

// cancelCheckInterval is how many edges are inserted between context checks.
const cancelCheckInterval = 4096

// Runner executes the load → build pipeline.
//
// The Runner holds no pipeline results, only its logger, so multiple
// goroutines can share one Runner.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute loads the input file and builds its index.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	loadStart := time.Now()
	forest, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	loadTime := time.Since(loadStart)

	m, stats, err := r.Build(ctx, forest)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	stats.LoadTime = loadTime

	return &Result{Forest: forest, Map: m, Stats: stats}, nil
}

// Load reads the edge file named by opts.
func (r *Runner) Load(ctx context.Context, opts Options) (*io.Forest, error) {
	if opts.format == "" {
		if err := opts.ValidateAndSetDefaults(); err != nil {
			return nil, err
		}
	}

	hooks := observability.Load()
	hooks.OnLoadStart(ctx, opts.Input)
	start := time.Now()

	forest, err := io.ImportFormat(opts.Input, opts.format)

	edgeCount := 0
	if forest != nil {
		edgeCount = len(forest.Edges)
	}
	hooks.OnLoadComplete(ctx, opts.Input, edgeCount, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("loaded edges",
		"path", opts.Input,
		"format", opts.format,
		"edges", edgeCount,
		"labels", len(forest.Labels),
		"duration", time.Since(start))
	return forest, nil
}

// Build inserts every edge of forest into a new builder and builds the index.
// The first rejected edge aborts the build with an INVALID_HIERARCHY error
// naming the edge and its position in the input.
func (r *Runner) Build(ctx context.Context, forest *io.Forest) (*consolidated.Map[uint32], Stats, error) {
	hooks := observability.Build()
	hooks.OnBuildStart(ctx, len(forest.Edges))
	start := time.Now()

	m, stats, err := r.build(ctx, forest)
	stats.BuildTime = time.Since(start)
	hooks.OnBuildComplete(ctx, stats.KeyCount, stats.DataSize, stats.BuildTime, err)
	if err != nil {
		return nil, stats, err
	}

	r.Logger.Info("built index",
		"edges", stats.EdgeCount,
		"keys", stats.KeyCount,
		"roots", stats.RootCount,
		"depth", stats.MaxDepth,
		"data", stats.DataSize,
		"duration", stats.BuildTime)
	return m, stats, nil
}

func (r *Runner) build(ctx context.Context, forest *io.Forest) (*consolidated.Map[uint32], Stats, error) {
	stats := Stats{EdgeCount: len(forest.Edges)}
	b := consolidated.NewBuilder[uint32]()

	for i, e := range forest.Edges {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, stats, err
			}
		}
		if err := b.Insert(e.Parent, e.Child); err != nil {
			observability.Build().OnEdgeRejected(ctx, e.Parent, e.Child, err)
			r.Logger.Debug("rejected edge", "parent", e.Parent, "child", e.Child, "err", err)
			return nil, stats, errors.Wrap(errors.ErrCodeInvalidHierarchy, err,
				"edge %d->%d at position %d", e.Parent, e.Child, position(forest, i))
		}
	}

	stats.RootCount, stats.MaxDepth = shape(b, forest)
	m := b.Build()
	stats.KeyCount = m.Len()
	stats.DataSize = m.Size()
	return m, stats, nil
}

func position(forest *io.Forest, i int) int {
	if i < len(forest.Positions) {
		return forest.Positions[i]
	}
	return i + 1
}

// shape counts the roots of the forest and the length of its longest chain.
func shape(b *consolidated.Builder[uint32], forest *io.Forest) (roots, depth int) {
	isParent := make(map[uint32]bool)
	for _, e := range forest.Edges {
		if e.Parent != e.Child {
			isParent[e.Parent] = true
		}
	}
	for k := range isParent {
		if _, ok := b.Parent(k); !ok {
			roots++
		}
	}

	memo := make(map[uint32]int, b.Len())
	var depthOf func(k uint32) int
	depthOf = func(k uint32) int {
		if d, ok := memo[k]; ok {
			return d
		}
		d := 0
		if p, ok := b.Parent(k); ok {
			d = depthOf(p) + 1
		}
		memo[k] = d
		return d
	}
	for _, e := range forest.Edges {
		depth = max(depth, depthOf(e.Child))
	}
	return roots, depth
}
