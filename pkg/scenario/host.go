package scenario

import (
	"github.com/matzehuels/masonry/pkg/column"
	"github.com/matzehuels/masonry/pkg/geom"
)

// NumberOfSections implements column.Host.
func (s *Scenario) NumberOfSections() int { return len(s.Sections) }

// NumberOfItems implements column.Host.
func (s *Scenario) NumberOfItems(section int) int {
	if sec, ok := s.section(section); ok {
		return sec.Count()
	}
	return 0
}

// ContentVisibleRect implements column.Host. The rect sits at the scroll
// offset.
func (s *Scenario) ContentVisibleRect() geom.Rect {
	v := s.Viewport
	return geom.NewRect(v.Offset.X, v.Offset.Y, v.Width, v.Height)
}

// ContentInsets implements column.Host.
func (s *Scenario) ContentInsets() geom.Insets { return s.Viewport.Insets }

// ContentOffset implements column.Host.
func (s *Scenario) ContentOffset() geom.Point { return s.Viewport.Offset }

// LeadingViewHeight implements column.LeadingViewHost.
func (s *Scenario) LeadingViewHeight() float64 { return s.Viewport.LeadingHeight }

func (s *Scenario) section(i int) (*Section, bool) {
	if i < 0 || i >= len(s.Sections) {
		return nil, false
	}
	return &s.Sections[i], true
}

// ColumnCount implements column.Delegate.
func (s *Scenario) ColumnCount(section int) (int, bool) {
	if sec, ok := s.section(section); ok && sec.Columns != nil {
		return *sec.Columns, true
	}
	return 0, false
}

// SectionInset implements column.Delegate.
func (s *Scenario) SectionInset(section int) (geom.Insets, bool) {
	if sec, ok := s.section(section); ok && sec.Inset != nil {
		return *sec.Inset, true
	}
	return geom.Insets{}, false
}

// InterItemSpacing implements column.Delegate.
func (s *Scenario) InterItemSpacing(section int) (float64, bool) {
	if sec, ok := s.section(section); ok {
		return deref(sec.InterItemSpacing)
	}
	return 0, false
}

// ColumnSpacing implements column.Delegate.
func (s *Scenario) ColumnSpacing(section int) (float64, bool) {
	if sec, ok := s.section(section); ok {
		return deref(sec.ColumnSpacing)
	}
	return 0, false
}

// HeaderHeight implements column.Delegate.
func (s *Scenario) HeaderHeight(section int) (float64, bool) {
	if sec, ok := s.section(section); ok {
		return deref(sec.HeaderHeight)
	}
	return 0, false
}

// FooterHeight implements column.Delegate.
func (s *Scenario) FooterHeight(section int) (float64, bool) {
	if sec, ok := s.section(section); ok {
		return deref(sec.FooterHeight)
	}
	return 0, false
}

// ItemHeight implements column.Delegate.
func (s *Scenario) ItemHeight(p column.IndexPath) (float64, bool) {
	if sec, ok := s.section(p.Section); ok && p.Item >= 0 && p.Item < len(sec.Heights) {
		return sec.Heights[p.Item], true
	}
	return 0, false
}

// ItemAspectRatio implements column.Delegate.
func (s *Scenario) ItemAspectRatio(p column.IndexPath) (geom.Size, bool) {
	if sec, ok := s.section(p.Section); ok && p.Item >= 0 && p.Item < len(sec.Ratios) {
		return sec.Ratios[p.Item], true
	}
	return geom.Size{}, false
}

func deref(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

var (
	_ column.Host            = (*Scenario)(nil)
	_ column.LeadingViewHost = (*Scenario)(nil)
	_ column.Delegate        = (*Scenario)(nil)
)
