// Package io reads parent→child edge lists and exports built indexes.
//
// # Overview
//
// The consolidated index itself is an in-memory layout and has no file
// format. What comes from disk is the hierarchy: a list of edges, optionally
// with human-readable labels for the numeric node ids. Three input formats
// are supported and selected with [DetectFormat] from the file extension.
//
// # JSON (.json)
//
//	{
//	  "nodes": [{"id": 1, "label": "engineering"}],
//	  "edges": [{"parent": 1, "child": 2}, {"parent": 2, "child": 3}]
//	}
//
// # TOML (.toml)
//
//	[[nodes]]
//	id = 1
//	label = "engineering"
//
//	[[edges]]
//	parent = 1
//	child = 2
//
// # Text (anything else)
//
// One edge per line as "parent child". Fields may be separated by spaces,
// tabs, a comma or "->". Blank lines and lines starting with '#' are skipped.
//
//	# org chart
//	1 -> 2
//	2 -> 3
//
// # Errors
//
// Decode failures are reported with code INVALID_FORMAT, malformed ids with
// INVALID_NODE and bad labels with INVALID_INPUT (see pkg/errors). Structural
// problems such as cycles are not detected here; they surface when the edges
// are inserted into a builder.
//
// # Export
//
// [WriteJSON] and [ExportJSON] write the descendant set of every key that has
// one, for consumption by tools that cannot link against this module.
package io
