package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/consolidated/pkg/consolidated"
	"github.com/matzehuels/consolidated/pkg/io"
)

// Defaults for [Options].
const (
	DefaultHighlightColor = "#7fd1c7"
	DefaultRankDir        = "TB"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Highlight selects a node whose consolidated set is filled with
	// HighlightColor. Nil disables highlighting.
	Highlight *uint32
	// HighlightColor is any Graphviz color. Empty means DefaultHighlightColor.
	HighlightColor string
	// RankDir is the Graphviz rankdir (TB, LR, BT, RL). Empty means TB.
	RankDir string
}

// ToDOT converts a forest to Graphviz DOT format.
// m must have been built from f's edges; it is only consulted for highlighting.
func ToDOT(f *io.Forest, m *consolidated.Map[uint32], opts Options) string {
	color := opts.HighlightColor
	if color == "" {
		color = DefaultHighlightColor
	}
	rankdir := opts.RankDir
	if rankdir == "" {
		rankdir = DefaultRankDir
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, id := range nodeIDs(f) {
		attrs := fmt.Sprintf("label=%q", f.Label(id))
		if opts.Highlight != nil && (id == *opts.Highlight || m.ContainsChild(*opts.Highlight, id)) {
			attrs += fmt.Sprintf(", fillcolor=%q", color)
			if id == *opts.Highlight {
				attrs += ", penwidth=2"
			}
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", id, attrs)
	}

	buf.WriteString("\n")
	for _, e := range f.Edges {
		if e.Parent == e.Child {
			continue
		}
		fmt.Fprintf(&buf, "  n%d -> n%d;\n", e.Parent, e.Child)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// nodeIDs returns every id that appears in an edge or carries a label, sorted.
func nodeIDs(f *io.Forest) []uint32 {
	seen := make(map[uint32]struct{}, len(f.Edges)+len(f.Labels))
	for _, e := range f.Edges {
		seen[e.Parent] = struct{}{}
		seen[e.Child] = struct{}{}
	}
	for id := range f.Labels {
		seen[id] = struct{}{}
	}
	ids := make([]uint32, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag so the diagram scales from a
// zero origin with explicit width and height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
