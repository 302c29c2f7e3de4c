package sink

import "github.com/matzehuels/masonry/pkg/column"

// palette colors, as hex strings for SVG and RGB triples for gg.
type color struct {
	hex     string
	r, g, b float64
}

var (
	colorBackground = color{"#ffffff", 1, 1, 1}
	colorCell       = color{"#cfe3f7", 0.812, 0.890, 0.969}
	colorCellStroke = color{"#4a7fb5", 0.290, 0.498, 0.710}
	colorHeader     = color{"#f7dcb4", 0.969, 0.863, 0.706}
	colorFooter     = color{"#d8efd0", 0.847, 0.937, 0.816}
	colorSection    = color{"#9a9a9a", 0.604, 0.604, 0.604}
	colorLabel      = color{"#222222", 0.133, 0.133, 0.133}
)

func fillFor(k column.Kind) color {
	switch k {
	case column.KindHeader:
		return colorHeader
	case column.KindFooter:
		return colorFooter
	}
	return colorCell
}

// options shared by the SVG and PNG renderers.
type options struct {
	labels   bool
	sections bool
	scale    float64
}

// Option configures rendering.
type Option func(*options)

// WithLabels draws each element's index path at its center.
func WithLabels() Option { return func(o *options) { o.labels = true } }

// WithSectionFrames outlines each section's frame.
func WithSectionFrames() Option { return func(o *options) { o.sections = true } }

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution). SVG
// output is unaffected.
func WithScale(s float64) Option { return func(o *options) { o.scale = s } }

func newOptions(opts ...Option) options {
	o := options{scale: 2.0}
	for _, opt := range opts {
		opt(&o)
	}
	if o.scale <= 0 {
		o.scale = 1
	}
	return o
}

func label(a column.Attributes) string {
	switch a.Kind {
	case column.KindHeader:
		return "H" + a.Path.String()
	case column.KindFooter:
		return "F" + a.Path.String()
	}
	return a.Path.String()
}
