// Package render converts rendered SVG diagrams into other output formats.
//
// Diagrams of a hierarchy are produced as SVG by the [nodelink] subpackage.
// [Convert] turns that SVG into PDF or PNG using the external rsvg-convert
// tool from librsvg:
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.Convert(ctx, svg, render.FormatPDF, 1)
//	png, err := render.Convert(ctx, svg, render.FormatPNG, 2.0) // 2x scale
//
// [nodelink]: github.com/matzehuels/consolidated/pkg/render/nodelink
package render
