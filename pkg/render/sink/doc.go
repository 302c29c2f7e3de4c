// Package sink renders geometry documents to image formats.
//
// A "sink" turns an [export.Document] into bytes:
//
//   - SVG: vector output, one <rect> per element, written to a buffer
//   - PNG: raster output drawn with fogleman/gg
//
// Both renderers share the same palette: cells are filled, headers and
// footers are tinted bands, and section frames are dashed outlines. Labels
// with each element's index path are optional.
//
//	svg := sink.RenderSVG(doc, sink.WithLabels())
//	png, err := sink.RenderPNG(doc, sink.WithScale(2))
package sink
