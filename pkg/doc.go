// Package pkg provides the libraries behind the consolidated CLI.
//
// # Overview
//
// A consolidated index maps every node of a forest to the complete set of
// nodes below it, so "everything under X" is a slice lookup instead of a
// tree walk. The pkg directory is organized as:
//
//  1. [consolidated] - Builder and immutable index (the core data structure)
//  2. [io] - Edge-list readers (JSON, TOML, text) and JSON export
//  3. [pipeline] - Orchestration (load → build) with logging and hooks
//  4. [render] - Diagram output (DOT, SVG, PDF, PNG)
//  5. [cache] - Rendered diagram cache
//  6. [errors], [observability], [buildinfo] - Supporting infrastructure
//
// # Data Flow
//
//	edge file (.json, .toml, .txt)
//	         ↓
//	    [io] package (decode edges and labels)
//	         ↓
//	    [consolidated] package (insert edges, build index)
//	         ↓
//	    queries, JSON export, node-link diagrams
//
// # Quick Start
//
//	b := consolidated.NewBuilder[uint32]()
//	_ = b.Insert(1, 2)
//	_ = b.Insert(2, 3)
//	m := b.Build()
//	m.Children(1).Slice() // [2 3]
//
// [consolidated]: github.com/matzehuels/consolidated/pkg/consolidated
// [io]: github.com/matzehuels/consolidated/pkg/io
// [pipeline]: github.com/matzehuels/consolidated/pkg/pipeline
// [render]: github.com/matzehuels/consolidated/pkg/render
// [cache]: github.com/matzehuels/consolidated/pkg/cache
// [errors]: github.com/matzehuels/consolidated/pkg/errors
// [observability]: github.com/matzehuels/consolidated/pkg/observability
// [buildinfo]: github.com/matzehuels/consolidated/pkg/buildinfo
package pkg
