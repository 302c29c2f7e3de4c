package pipeline

import (
	"github.com/matzehuels/masonry/pkg/column"
	"github.com/matzehuels/masonry/pkg/errors"
	"github.com/matzehuels/masonry/pkg/export"
	"github.com/matzehuels/masonry/pkg/scenario"
)

// ApplyOverrides returns a copy of s with the overrides applied. Sections
// are shared with s and must not be modified through the copy.
func ApplyOverrides(s *scenario.Scenario, ov Overrides) (*scenario.Scenario, error) {
	c := *s
	if ov.Width > 0 {
		c.Viewport.Width = ov.Width
	}
	if ov.Columns > 0 {
		c.Options.ColumnCount = ov.Columns
	}
	if ov.Direction != "" {
		d, err := column.ParseRenderDirection(ov.Direction)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "direction override")
		}
		c.Options.RenderDirection = d
	}
	if ov.Sticky {
		c.Options.PinHeaders = true
	}
	return &c, nil
}

// GenerateLayout runs a prepare pass over s and exports the result.
func GenerateLayout(s *scenario.Scenario) export.Document {
	l := s.NewLayout()
	l.Prepare()
	return export.FromLayout(l, s.Name, s.ContentVisibleRect())
}
