package column

import (
	"math"

	"github.com/matzehuels/masonry/pkg/geom"
)

// ScrollPosition is where the host should align a scroll target. The layout
// computes the same target rectangle for every position; alignment is applied
// by the host.
type ScrollPosition int

const (
	ScrollNone ScrollPosition = iota
	ScrollTop
	ScrollCentered
	ScrollBottom
	ScrollNearest
)

// ContentSize returns the size of the scrollable content: the visible width
// less the host's content insets by the bottom of the last section. It is
// zero when there are no sections or the last section ends at 0.
func (l *Layout) ContentSize() geom.Size {
	s := l.current()
	if len(s.sections) == 0 {
		return geom.Size{}
	}
	h := s.sections[len(s.sections)-1].frame.MaxY()
	if h == 0 {
		return geom.Size{}
	}
	return geom.Size{
		Width:  l.host.ContentVisibleRect().Width - l.host.ContentInsets().Horizontal(),
		Height: h,
	}
}

// NumberOfSections returns the number of sections laid out by the last pass.
func (l *Layout) NumberOfSections() int { return len(l.current().sections) }

// NumberOfItems returns the number of items laid out in section.
func (l *Layout) NumberOfItems(section int) int {
	if sc, ok := l.current().section(section); ok {
		return len(sc.items)
	}
	return 0
}

// NumberOfColumns returns the column count used for section, or 0 if the
// section was not laid out.
func (l *Layout) NumberOfColumns(section int) int {
	if sc, ok := l.current().section(section); ok {
		return len(sc.columns)
	}
	return 0
}

// ItemWidth returns the item width computed for the last section of the most
// recent pass. Sections with different column counts or insets have
// different widths; use [Layout.ItemWidthInSection] for those.
func (l *Layout) ItemWidth() float64 { return l.current().itemWidth }

// ItemWidthInSection computes the item width for one section using the
// current host width and delegate answers and the options of the last pass.
func (l *Layout) ItemWidthInSection(section int) float64 {
	r := resolver{d: l.delegate, opts: l.current().opts}
	columns := r.columnCount(section)
	inset := r.sectionInset(section)
	contentWidth := l.host.ContentVisibleRect().Width - (inset.Horizontal() + l.host.ContentInsets().Horizontal())
	return math.Round((contentWidth - float64(columns-1)*r.columnSpacing(section)) / float64(columns))
}

// SectionFrame returns the bounding rectangle of section, or the zero rect
// if it is unknown.
func (l *Layout) SectionFrame(section int) geom.Rect {
	if sc, ok := l.current().section(section); ok {
		return sc.frame
	}
	return geom.Rect{}
}

// Attributes returns a copy of every attribute from the last pass: for each
// section its header, its items in index order, then its footer.
func (l *Layout) Attributes() []Attributes {
	all := l.current().all
	out := make([]Attributes, len(all))
	copy(out, all)
	return out
}

// ItemsIntersecting returns the item attributes whose frames intersect rect,
// grouped by section and then by column in placement order.
func (l *Layout) ItemsIntersecting(rect geom.Rect) []Attributes {
	s := l.current()
	if rect.IsZero() || len(s.sections) == 0 {
		return nil
	}
	var out []Attributes
	for i := range s.sections {
		sc := &s.sections[i]
		if sc.frame.IsEmpty() || !sc.frame.Intersects(rect) {
			continue
		}
		sc.scan(rect, func(a Attributes) { out = append(out, a) })
	}
	return out
}

// IndexPathsIntersecting returns the paths of items whose frames intersect
// rect. Sections that lie entirely inside rect contribute all of their items
// without a per-item check.
func (l *Layout) IndexPathsIntersecting(rect geom.Rect) []IndexPath {
	s := l.current()
	if rect.IsZero() || len(s.sections) == 0 {
		return nil
	}
	var out []IndexPath
	for i := range s.sections {
		sc := &s.sections[i]
		if len(sc.items) == 0 || sc.frame.IsEmpty() || !sc.frame.Intersects(rect) {
			continue
		}
		if rect.Contains(sc.frame) {
			for _, a := range sc.items {
				out = append(out, a.Path)
			}
			continue
		}
		sc.scan(rect, func(a Attributes) { out = append(out, a.Path) })
	}
	return out
}

// scan visits the items intersecting rect column by column. Items within a
// column are y-ordered, so a column is abandoned once an item starts below
// rect.
func (sc *section) scan(rect geom.Rect, visit func(Attributes)) {
	maxY := rect.MaxY()
	for _, column := range sc.columns {
		for _, idx := range column {
			a := sc.items[idx]
			if a.Frame.Intersects(rect) {
				visit(a)
			} else if a.Frame.Y > maxY {
				break
			}
		}
	}
}

// ItemAt returns the item whose frame contains pt.
func (l *Layout) ItemAt(pt geom.Point) (IndexPath, bool) {
	s := l.current()
	for i := range s.sections {
		sc := &s.sections[i]
		if !sc.frame.ContainsPoint(pt) {
			continue
		}
		for _, column := range sc.columns {
			for _, idx := range column {
				a := sc.items[idx]
				if a.Frame.ContainsPoint(pt) {
					return a.Path, true
				}
				if a.Frame.Y > pt.Y {
					break
				}
			}
		}
	}
	return IndexPath{}, false
}

// AttributesForItem returns the attributes of the item at p.
func (l *Layout) AttributesForItem(p IndexPath) (Attributes, bool) {
	return l.current().item(p)
}

// AttributesForSupplementary returns the header or footer of p.Section.
// With [Options.PinHeaders] set, the returned header is repositioned for the
// host's current scroll offset.
func (l *Layout) AttributesForSupplementary(kind Kind, p IndexPath) (Attributes, bool) {
	s := l.current()
	sc, ok := s.section(p.Section)
	if !ok {
		return Attributes{}, false
	}
	switch kind {
	case KindHeader:
		if !sc.hasHeader {
			return Attributes{}, false
		}
		if s.opts.PinHeaders {
			return l.pinnedHeader(s, p.Section), true
		}
		return sc.header, true
	case KindFooter:
		if !sc.hasFooter {
			return Attributes{}, false
		}
		return sc.footer, true
	}
	return Attributes{}, false
}

// pinnedHeader returns a copy of section's header clamped between its
// natural position and the top of the next section's header.
func (l *Layout) pinnedHeader(s *snapshot, section int) Attributes {
	a := s.sections[section].header
	natural := a.Frame.Y

	limit := math.Inf(1)
	if next, ok := s.section(section + 1); ok && next.hasHeader {
		limit = next.header.Frame.Y - a.Frame.Height
	}

	pinned := l.host.ContentOffset().Y + l.host.ContentInsets().Top
	a.Frame.Y = math.Min(math.Max(pinned, natural), limit)
	a.Floating = section == 0 || a.Frame.Y > natural
	return a
}

// ScrollTarget returns the rectangle the host should scroll to in order to
// reveal the item at p. With pinned headers the rectangle grows upward by the
// section header's height so the item is not hidden beneath it; otherwise it
// is shifted down by the host's top content inset.
func (l *Layout) ScrollTarget(p IndexPath, _ ScrollPosition) (geom.Rect, bool) {
	s := l.current()
	a, ok := s.item(p)
	if !ok {
		return geom.Rect{}, false
	}
	frame := a.Frame
	if s.opts.PinHeaders && s.sections[p.Section].hasHeader {
		h := l.pinnedHeader(s, p.Section).Frame.Height
		frame.Y -= h
		frame.Height += h
		return frame, true
	}
	frame.Y += l.host.ContentInsets().Top
	return frame, true
}
