// Package pipeline loads an edge file and builds a consolidated index from it.
//
// This package is the single place where file loading, index construction,
// logging and observability hooks come together, so the CLI (and any future
// service) behave the same way.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Input: "org.toml"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result.Map.Children(42)
//
// Run individual stages:
//
//	forest, err := runner.Load(ctx, opts)
//	m, stats, err := runner.Build(ctx, forest)
package pipeline

import (
	"time"

	"github.com/matzehuels/consolidated/pkg/consolidated"
	"github.com/matzehuels/consolidated/pkg/errors"
	"github.com/matzehuels/consolidated/pkg/io"
)

// Options configures a pipeline run.
type Options struct {
	// Input is the path of the edge file.
	Input string
	// Format overrides format detection from the file extension.
	// Empty means detect.
	Format string

	// format is the resolved input format.
	format io.Format
}

// ValidateAndSetDefaults checks the options and resolves the input format.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input file is required")
	}
	if o.Format == "" {
		o.format = io.DetectFormat(o.Input)
		return nil
	}
	f, err := io.ParseFormat(o.Format)
	if err != nil {
		return err
	}
	o.format = f
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Forest is the decoded edge list, including labels.
	Forest *io.Forest

	// Map is the built index.
	Map *consolidated.Map[uint32]

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	EdgeCount int // edges read from the input
	KeyCount  int // addressable keys (largest key + 1)
	DataSize  int // cells in the flat data buffer
	RootCount int // keys with children but no parent
	MaxDepth  int // longest root→leaf chain, in edges
	LoadTime  time.Duration
	BuildTime time.Duration
}
