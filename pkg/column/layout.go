package column

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/matzehuels/masonry/pkg/geom"
	"github.com/matzehuels/masonry/pkg/observability"
)

// Layout computes and caches column layout geometry for a [Host].
//
// The zero value is not usable; create layouts with [New]. Queries and
// NeedsPrepare may run concurrently with Prepare. Prepare, Configure and
// ShouldInvalidate must not run concurrently with each other.
type Layout struct {
	host     Host
	delegate Delegate
	opts     Options

	invalid  atomic.Bool
	lastSize geom.Size

	snap atomic.Pointer[snapshot]
}

// New creates a layout for host. A nil delegate behaves like [NopDelegate].
// The layout starts invalid; call [Layout.Prepare] before querying.
func New(host Host, delegate Delegate, opts Options) *Layout {
	if delegate == nil {
		delegate = NopDelegate{}
	}
	l := &Layout{
		host:     host,
		delegate: delegate,
		opts:     opts,
	}
	l.invalid.Store(true)
	return l
}

// Options returns the current configuration.
func (l *Layout) Options() Options { return l.opts }

// Configure replaces the configuration. It reports whether anything changed;
// a change marks the layout invalid until the next Prepare.
func (l *Layout) Configure(opts Options) bool {
	if opts == l.opts {
		return false
	}
	l.opts = opts
	l.invalidate("options")
	return true
}

// NeedsPrepare reports whether the cached geometry is stale.
func (l *Layout) NeedsPrepare() bool { return l.invalid.Load() }

// ShouldInvalidate reports whether a bounds change to newSize requires a new
// pass, and records newSize for the next check. Any size change counts when
// [Options.InvalidateOnBoundsChange] is set; otherwise only width changes do.
func (l *Layout) ShouldInvalidate(newSize geom.Size) bool {
	prev := l.lastSize
	l.lastSize = newSize

	changed := prev.Width != newSize.Width
	if l.opts.InvalidateOnBoundsChange {
		changed = prev != newSize
	}
	if changed {
		l.invalidate("bounds")
	}
	return changed
}

func (l *Layout) invalidate(reason string) {
	l.invalid.Store(true)
	observability.Layout().OnInvalidate(reason)
}

// Prepare recomputes every frame from the host and delegate and publishes
// the result for queries. It always runs to completion.
func (l *Layout) Prepare() {
	start := time.Now()
	s := l.build()
	l.snap.Store(s)
	l.invalid.Store(false)
	observability.Layout().OnPrepare(len(s.sections), s.itemCount(), time.Since(start))
}

// build runs the single top-to-bottom pass.
func (l *Layout) build() *snapshot {
	s := &snapshot{opts: l.opts}
	n := l.host.NumberOfSections()
	if n <= 0 {
		return s
	}

	r := resolver{d: l.delegate, opts: l.opts}
	visibleWidth := l.host.ContentVisibleRect().Width
	contentInsets := l.host.ContentInsets()
	top := leadingHeight(l.host)

	s.sections = make([]section, n)
	for sec := 0; sec < n; sec++ {
		columns := r.columnCount(sec)
		inset := r.sectionInset(sec)
		itemSpacing := r.interItemSpacing(sec)
		colSpacing := r.columnSpacing(sec)

		contentWidth := visibleWidth - (inset.Horizontal() + contentInsets.Horizontal())
		itemWidth := math.Round((contentWidth - float64(columns-1)*colSpacing) / float64(columns))
		s.itemWidth = itemWidth

		sc := &s.sections[sec]
		sc.columns = make([][]int, columns)
		sectionTop := top

		if h := r.headerHeight(sec); h > 0 {
			sc.header = Attributes{
				Kind:  KindHeader,
				Path:  Path(sec, 0),
				Frame: l.supplementaryFrame(top, h, inset, visibleWidth),
				Alpha: 1,
			}
			sc.hasHeader = true
			s.all = append(s.all, sc.header)
			top = sc.header.Frame.MaxY()
		}

		top += inset.Top
		t := newTracker(columns, top)

		count := max(l.host.NumberOfItems(sec), 0)
		sc.items = make([]Attributes, 0, count)
		sc.itemColumn = make([]int, 0, count)
		sc.itemRow = make([]int, 0, count)

		for item := 0; item < count; item++ {
			p := Path(sec, item)
			col := t.next(l.opts.RenderDirection, item)
			x := inset.Left + math.Round((itemWidth+colSpacing)*float64(col))
			y := t.bottom(col)

			attrs := Attributes{
				Kind:  KindCell,
				Path:  p,
				Frame: geom.NewRect(x, y, itemWidth, r.itemHeight(p, itemWidth)),
				Alpha: 1,
			}

			sc.itemColumn = append(sc.itemColumn, col)
			sc.itemRow = append(sc.itemRow, len(sc.columns[col]))
			sc.columns[col] = append(sc.columns[col], len(sc.items))
			sc.items = append(sc.items, attrs)
			s.all = append(s.all, attrs)

			t.record(col, attrs.Frame.MaxY()+itemSpacing)
		}

		// Drop the spacing that trails the last item of the longest column.
		// An empty section still gives it up.
		top = t.bottom(t.longest()) - itemSpacing

		if h := r.footerHeight(sec); h > 0 {
			sc.footer = Attributes{
				Kind:  KindFooter,
				Path:  Path(sec, 0),
				Frame: l.supplementaryFrame(top, h, inset, visibleWidth),
				Alpha: 1,
			}
			sc.hasFooter = true
			s.all = append(s.all, sc.footer)
			top = sc.footer.Frame.MaxY()
		}

		top += inset.Bottom
		sc.frame = geom.NewRect(inset.Left, sectionTop, contentWidth, top-sectionTop)
	}
	return s
}

// supplementaryFrame places a header or footer at y. Without
// InsetSupplementaryViews it spans the full visible width from x=0 and
// ignores both section and content insets.
func (l *Layout) supplementaryFrame(y, height float64, inset geom.Insets, visibleWidth float64) geom.Rect {
	if l.opts.InsetSupplementaryViews {
		return geom.NewRect(inset.Left, y, visibleWidth-inset.Horizontal(), height)
	}
	return geom.NewRect(0, y, visibleWidth, height)
}

// snapshot is the immutable result of one pass. Each section owns a single
// arena of item attributes; the per-column lists hold indices into it.
type snapshot struct {
	opts      Options
	sections  []section
	all       []Attributes
	itemWidth float64
}

type section struct {
	items      []Attributes
	columns    [][]int // indices into items, in placement order
	itemColumn []int   // column of items[i]
	itemRow    []int   // position of items[i] within its column

	header, footer       Attributes
	hasHeader, hasFooter bool

	frame geom.Rect
}

var emptySnapshot = &snapshot{}

func (s *snapshot) itemCount() int {
	n := 0
	for i := range s.sections {
		n += len(s.sections[i].items)
	}
	return n
}

func (s *snapshot) section(i int) (*section, bool) {
	if i < 0 || i >= len(s.sections) {
		return nil, false
	}
	return &s.sections[i], true
}

func (s *snapshot) item(p IndexPath) (Attributes, bool) {
	sc, ok := s.section(p.Section)
	if !ok || p.Item < 0 || p.Item >= len(sc.items) {
		return Attributes{}, false
	}
	return sc.items[p.Item], true
}

// current returns the latest published snapshot, or an empty one before the
// first Prepare.
func (l *Layout) current() *snapshot {
	if s := l.snap.Load(); s != nil {
		return s
	}
	return emptySnapshot
}
