package column

import "github.com/matzehuels/masonry/pkg/geom"

// Host is the collection widget that owns the items. The layout only reads
// from it.
type Host interface {
	NumberOfSections() int
	NumberOfItems(section int) int
	// ContentVisibleRect is the visible region in content coordinates. Its
	// width drives column widths.
	ContentVisibleRect() geom.Rect
	ContentInsets() geom.Insets
	// ContentOffset is the current scroll position, used for sticky headers.
	ContentOffset() geom.Point
}

// LeadingViewHost is implemented by hosts that show an accessory view above
// the first section. Its height offsets the whole layout.
type LeadingViewHost interface {
	LeadingViewHeight() float64
}

func leadingHeight(h Host) float64 {
	if lv, ok := h.(LeadingViewHost); ok {
		return lv.LeadingViewHeight()
	}
	return 0
}
