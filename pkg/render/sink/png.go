package sink

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/masonry/pkg/export"
)

// RenderPNG rasterizes d with gg at the configured scale.
func RenderPNG(d export.Document, opts ...Option) ([]byte, error) {
	o := newOptions(opts...)
	w, h := canvasSize(d)

	dc := gg.NewContext(int(math.Ceil(w*o.scale)), int(math.Ceil(h*o.scale)))
	dc.Scale(o.scale, o.scale)
	dc.SetRGB(colorBackground.r, colorBackground.g, colorBackground.b)
	dc.Clear()

	if o.sections {
		dc.SetDash(4, 3)
		for _, s := range d.Sections {
			f := s.Frame
			dc.DrawRectangle(f.X, f.Y, f.Width, f.Height)
			dc.SetRGB(colorSection.r, colorSection.g, colorSection.b)
			dc.SetLineWidth(1)
			dc.Stroke()
		}
		dc.SetDash()
	}

	for _, a := range d.Attributes() {
		f := a.Frame
		fill := fillFor(a.Kind)
		dc.DrawRectangle(f.X, f.Y, f.Width, f.Height)
		dc.SetRGBA(fill.r, fill.g, fill.b, a.Alpha)
		dc.FillPreserve()
		dc.SetRGB(colorCellStroke.r, colorCellStroke.g, colorCellStroke.b)
		dc.SetLineWidth(1)
		dc.Stroke()
	}

	if o.labels {
		dc.SetRGB(colorLabel.r, colorLabel.g, colorLabel.b)
		for _, a := range d.Attributes() {
			f := a.Frame
			dc.DrawStringAnchored(label(a), f.X+f.Width/2, f.Y+f.Height/2, 0.5, 0.5)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
