// Package nodelink renders a forest as a node-link diagram.
//
// # Overview
//
// Nodes appear as boxes connected by parent→child arrows. When a node is
// selected for highlighting, its consolidated set (the node and everything
// below it) is filled with the highlight color so the blast radius of a
// change is visible at a glance.
//
// # Usage
//
//	dot := nodelink.ToDOT(forest, m, nodelink.Options{Highlight: &id})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion is done by the parent render package.
package nodelink
