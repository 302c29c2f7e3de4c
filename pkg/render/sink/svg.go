package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/masonry/pkg/export"
)

// RenderSVG renders d as a standalone SVG document sized to its content.
func RenderSVG(d export.Document, opts ...Option) []byte {
	o := newOptions(opts...)
	w, h := canvasSize(d)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", colorBackground.hex)

	if o.sections {
		for _, s := range d.Sections {
			f := s.Frame
			fmt.Fprintf(&buf, `  <rect class="section" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-dasharray="4 3"/>`+"\n",
				f.X, f.Y, f.Width, f.Height, colorSection.hex)
		}
	}

	for _, a := range d.Attributes() {
		f := a.Frame
		fmt.Fprintf(&buf, `  <rect id="%s-%d-%d" class="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="1" opacity="%g"/>`+"\n",
			a.Kind, a.Path.Section, a.Path.Item, a.Kind, f.X, f.Y, f.Width, f.Height,
			fillFor(a.Kind).hex, colorCellStroke.hex, a.Alpha)
	}

	if o.labels {
		for _, a := range d.Attributes() {
			f := a.Frame
			fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-family="monospace" font-size="11" text-anchor="middle" dominant-baseline="middle" fill="%s">%s</text>`+"\n",
				f.X+f.Width/2, f.Y+f.Height/2, colorLabel.hex, label(a))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// canvasSize covers the viewport width and the full content height.
func canvasSize(d export.Document) (float64, float64) {
	w := max(d.Viewport.Width, d.ContentSize.Width, 1)
	h := max(d.ContentSize.Height, 1)
	return w, h
}
