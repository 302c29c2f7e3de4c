package column

import (
	"math"

	"github.com/matzehuels/masonry/pkg/geom"
)

// Delegate supplies per-section and per-item size hints.
//
// Every method reports whether it has an answer. When ok is false the layout
// falls back to the matching [Options] default. Implementations must be pure:
// the layout may ask the same question more than once per pass.
type Delegate interface {
	ColumnCount(section int) (n int, ok bool)
	SectionInset(section int) (geom.Insets, bool)
	InterItemSpacing(section int) (float64, bool)
	ColumnSpacing(section int) (float64, bool)
	ItemHeight(p IndexPath) (float64, bool)
	// ItemAspectRatio returns the item's width:height proportion. A ratio
	// with a non-positive component is ignored.
	ItemAspectRatio(p IndexPath) (geom.Size, bool)
	HeaderHeight(section int) (float64, bool)
	FooterHeight(section int) (float64, bool)
}

// NopDelegate answers nothing; every value comes from [Options].
type NopDelegate struct{}

func (NopDelegate) ColumnCount(int) (int, bool)                 { return 0, false }
func (NopDelegate) SectionInset(int) (geom.Insets, bool)        { return geom.Insets{}, false }
func (NopDelegate) InterItemSpacing(int) (float64, bool)        { return 0, false }
func (NopDelegate) ColumnSpacing(int) (float64, bool)           { return 0, false }
func (NopDelegate) ItemHeight(IndexPath) (float64, bool)        { return 0, false }
func (NopDelegate) ItemAspectRatio(IndexPath) (geom.Size, bool) { return geom.Size{}, false }
func (NopDelegate) HeaderHeight(int) (float64, bool)            { return 0, false }
func (NopDelegate) FooterHeight(int) (float64, bool)            { return 0, false }

// Funcs adapts a set of optional callbacks to [Delegate]. A nil field means
// the delegate has no answer for that question.
type Funcs struct {
	ColumnCountFunc      func(section int) int
	SectionInsetFunc     func(section int) geom.Insets
	InterItemSpacingFunc func(section int) float64
	ColumnSpacingFunc    func(section int) float64
	ItemHeightFunc       func(p IndexPath) float64
	ItemAspectRatioFunc  func(p IndexPath) geom.Size
	HeaderHeightFunc     func(section int) float64
	FooterHeightFunc     func(section int) float64
}

func (f Funcs) ColumnCount(section int) (int, bool) {
	if f.ColumnCountFunc == nil {
		return 0, false
	}
	return f.ColumnCountFunc(section), true
}

func (f Funcs) SectionInset(section int) (geom.Insets, bool) {
	if f.SectionInsetFunc == nil {
		return geom.Insets{}, false
	}
	return f.SectionInsetFunc(section), true
}

func (f Funcs) InterItemSpacing(section int) (float64, bool) {
	if f.InterItemSpacingFunc == nil {
		return 0, false
	}
	return f.InterItemSpacingFunc(section), true
}

func (f Funcs) ColumnSpacing(section int) (float64, bool) {
	if f.ColumnSpacingFunc == nil {
		return 0, false
	}
	return f.ColumnSpacingFunc(section), true
}

func (f Funcs) ItemHeight(p IndexPath) (float64, bool) {
	if f.ItemHeightFunc == nil {
		return 0, false
	}
	return f.ItemHeightFunc(p), true
}

func (f Funcs) ItemAspectRatio(p IndexPath) (geom.Size, bool) {
	if f.ItemAspectRatioFunc == nil {
		return geom.Size{}, false
	}
	return f.ItemAspectRatioFunc(p), true
}

func (f Funcs) HeaderHeight(section int) (float64, bool) {
	if f.HeaderHeightFunc == nil {
		return 0, false
	}
	return f.HeaderHeightFunc(section), true
}

func (f Funcs) FooterHeight(section int) (float64, bool) {
	if f.FooterHeightFunc == nil {
		return 0, false
	}
	return f.FooterHeightFunc(section), true
}

var (
	_ Delegate = NopDelegate{}
	_ Delegate = Funcs{}
)

// resolver applies the "ask the delegate, else use the default" rule.
type resolver struct {
	d    Delegate
	opts Options
}

func (r resolver) columnCount(section int) int {
	n, ok := r.d.ColumnCount(section)
	if !ok {
		n = r.opts.ColumnCount
	}
	if n <= 0 {
		n = 1
	}
	return n
}

func (r resolver) sectionInset(section int) geom.Insets {
	if in, ok := r.d.SectionInset(section); ok {
		return in
	}
	return r.opts.SectionInset
}

func (r resolver) interItemSpacing(section int) float64 {
	if v, ok := r.d.InterItemSpacing(section); ok {
		return v
	}
	return r.opts.InterItemSpacing
}

func (r resolver) columnSpacing(section int) float64 {
	if v, ok := r.d.ColumnSpacing(section); ok {
		return v
	}
	return r.opts.ColumnSpacing
}

func (r resolver) headerHeight(section int) float64 {
	if v, ok := r.d.HeaderHeight(section); ok {
		return v
	}
	return r.opts.HeaderHeight
}

func (r resolver) footerHeight(section int) float64 {
	if v, ok := r.d.FooterHeight(section); ok {
		return v
	}
	return r.opts.FooterHeight
}

// itemHeight resolves an item's height for the given column width. A valid
// aspect ratio wins; an explicit height is then added on top of the scaled
// height rather than replacing it.
func (r resolver) itemHeight(p IndexPath, itemWidth float64) float64 {
	if ratio, ok := r.d.ItemAspectRatio(p); ok && ratio.Width > 0 && ratio.Height > 0 {
		h := math.Floor(ratio.Height * (itemWidth / ratio.Width))
		if extra, ok := r.d.ItemHeight(p); ok {
			h += extra
		}
		return h
	}
	if h, ok := r.d.ItemHeight(p); ok {
		return h
	}
	return r.opts.ItemHeight
}
