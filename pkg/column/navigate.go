package column

import (
	"fmt"
	"strings"

	"github.com/matzehuels/masonry/pkg/geom"
)

// Direction is a keyboard navigation direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection parses "up", "down", "left" or "right".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("unknown direction %q (want up, down, left or right)", s)
}

// probeHeight is the height of the strip used to decide whether two columns
// in different sections line up horizontally.
const probeHeight = 50

func probe(frame geom.Rect) geom.Rect {
	return geom.NewRect(frame.X, 0, frame.Width, probeHeight)
}

// NextItem returns the item reached by moving from p in dir.
//
// Up and Down stay within p's column and cross into the neighboring section
// at the ends of it, landing in the column that lines up horizontally (or the
// neighbor's last or first item when none does). They report false when there
// is no such section. Left and Right step through items in index order,
// skipping empty sections, and return p itself at the very first or last
// item. Any direction reports false if p has no frame.
func (l *Layout) NextItem(dir Direction, p IndexPath) (IndexPath, bool) {
	s := l.current()
	cur, ok := s.item(p)
	if !ok {
		return IndexPath{}, false
	}
	switch dir {
	case Up:
		return s.above(p, cur.Frame)
	case Down:
		return s.below(p, cur.Frame)
	case Left:
		return s.before(p), true
	case Right:
		return s.after(p), true
	}
	return IndexPath{}, false
}

func (s *snapshot) above(p IndexPath, frame geom.Rect) (IndexPath, bool) {
	sc := &s.sections[p.Section]
	col, row := sc.itemColumn[p.Item], sc.itemRow[p.Item]
	if row > 0 {
		return sc.items[sc.columns[col][row-1]].Path, true
	}

	prev, ok := s.section(p.Section - 1)
	if !ok {
		return IndexPath{}, false
	}
	band := probe(frame)
	for c := len(prev.columns) - 1; c >= 0; c-- {
		column := prev.columns[c]
		if len(column) == 0 {
			continue
		}
		if band.Intersects(probe(prev.items[column[0]].Frame)) {
			return prev.items[column[len(column)-1]].Path, true
		}
	}
	if n := len(prev.items); n > 0 {
		return prev.items[n-1].Path, true
	}
	return IndexPath{}, false
}

func (s *snapshot) below(p IndexPath, frame geom.Rect) (IndexPath, bool) {
	sc := &s.sections[p.Section]
	col, row := sc.itemColumn[p.Item], sc.itemRow[p.Item]
	if row < len(sc.columns[col])-1 {
		return sc.items[sc.columns[col][row+1]].Path, true
	}

	next, ok := s.section(p.Section + 1)
	if !ok {
		return IndexPath{}, false
	}
	band := probe(frame)
	for _, column := range next.columns {
		if len(column) == 0 {
			continue
		}
		if band.Intersects(probe(next.items[column[0]].Frame)) {
			return next.items[column[0]].Path, true
		}
	}
	if len(next.items) > 0 {
		return next.items[0].Path, true
	}
	return IndexPath{}, false
}

func (s *snapshot) before(p IndexPath) IndexPath {
	if p.Item > 0 {
		return Path(p.Section, p.Item-1)
	}
	for sec := p.Section - 1; sec >= 0; sec-- {
		if n := len(s.sections[sec].items); n > 0 {
			return Path(sec, n-1)
		}
	}
	return p
}

func (s *snapshot) after(p IndexPath) IndexPath {
	if p.Item < len(s.sections[p.Section].items)-1 {
		return Path(p.Section, p.Item+1)
	}
	for sec := p.Section + 1; sec < len(s.sections); sec++ {
		if len(s.sections[sec].items) > 0 {
			return Path(sec, 0)
		}
	}
	return p
}
