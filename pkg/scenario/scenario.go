package scenario

import (
	"github.com/matzehuels/masonry/pkg/column"
	"github.com/matzehuels/masonry/pkg/errors"
	"github.com/matzehuels/masonry/pkg/geom"
)

// Limits on scenario size. Every item and column is materialized by a
// prepare pass.
const (
	MaxItems   = 100_000
	MaxColumns = 256
)

// Scenario is a declarative host and delegate for a column layout.
type Scenario struct {
	Name     string         `json:"name,omitempty" toml:"name,omitempty"`
	Viewport Viewport       `json:"viewport" toml:"viewport"`
	Options  column.Options `json:"layout" toml:"layout"`
	Sections []Section      `json:"sections" toml:"sections"`
}

// Viewport is the visible region of the host and its scroll state.
type Viewport struct {
	Width  float64     `json:"width" toml:"width"`
	Height float64     `json:"height" toml:"height"`
	Insets geom.Insets `json:"insets" toml:"insets"`
	Offset geom.Point  `json:"offset" toml:"offset"`
	// LeadingHeight is the height of an accessory view shown above the
	// first section.
	LeadingHeight float64 `json:"leading_height,omitempty" toml:"leading_height,omitempty"`
}

// Section describes one section. Nil overrides fall back to the scenario's
// layout options.
type Section struct {
	// Items is the number of items. Heights and Ratios may describe fewer
	// items than this; the rest use the defaults. When Items is smaller than
	// either list, the longer list wins.
	Items int `json:"items,omitempty" toml:"items,omitempty"`

	Columns          *int         `json:"columns,omitempty" toml:"columns"`
	Inset            *geom.Insets `json:"inset,omitempty" toml:"inset"`
	InterItemSpacing *float64     `json:"inter_item_spacing,omitempty" toml:"inter_item_spacing"`
	ColumnSpacing    *float64     `json:"column_spacing,omitempty" toml:"column_spacing"`
	HeaderHeight     *float64     `json:"header_height,omitempty" toml:"header_height"`
	FooterHeight     *float64     `json:"footer_height,omitempty" toml:"footer_height"`

	// Heights are explicit item heights, by item index. With a ratio the
	// height is added to the scaled height.
	Heights []float64 `json:"heights,omitempty" toml:"heights,omitempty"`
	// Ratios are item width:height proportions, by item index.
	Ratios []geom.Size `json:"ratios,omitempty" toml:"ratios,omitempty"`
}

// Count returns the number of items in the section.
func (s Section) Count() int {
	return max(s.Items, len(s.Heights), len(s.Ratios))
}

// New returns an empty scenario with the default layout options.
func New() *Scenario {
	return &Scenario{Options: column.DefaultOptions()}
}

// NewLayout returns an unprepared layout reading from s.
func (s *Scenario) NewLayout() *column.Layout {
	return column.New(s, s, s.Options)
}

// SetOffset moves the scroll position.
func (s *Scenario) SetOffset(p geom.Point) { s.Viewport.Offset = p }

// Resize changes the viewport size.
func (s *Scenario) Resize(size geom.Size) {
	s.Viewport.Width, s.Viewport.Height = size.Width, size.Height
}

// Validate reports the first invalid value in s as an
// [errors.ErrCodeInvalidScenario] error.
func (s *Scenario) Validate() error {
	v := s.Viewport
	if err := errors.ValidateLength("viewport.width", v.Width); err != nil {
		return err
	}
	if v.Width == 0 {
		return errors.New(errors.ErrCodeInvalidScenario, "viewport.width must be positive")
	}
	for _, f := range []field{
		{"viewport.height", v.Height},
		{"viewport.leading_height", v.LeadingHeight},
		{"layout.inter_item_spacing", s.Options.InterItemSpacing},
		{"layout.column_spacing", s.Options.ColumnSpacing},
		{"layout.header_height", s.Options.HeaderHeight},
		{"layout.footer_height", s.Options.FooterHeight},
		{"layout.item_height", s.Options.ItemHeight},
	} {
		if err := errors.ValidateLength(f.name, f.value); err != nil {
			return err
		}
	}
	if err := validateInsets("layout.section_inset", s.Options.SectionInset); err != nil {
		return err
	}
	if err := errors.ValidateCount("layout.column_count", s.Options.ColumnCount); err != nil {
		return err
	}
	if err := errors.ValidateMax("layout.column_count", s.Options.ColumnCount, MaxColumns); err != nil {
		return err
	}

	total := 0
	for i, sec := range s.Sections {
		if err := sec.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScenario, err, "section %d", i)
		}
		total += sec.Count()
		if err := errors.ValidateMax("total items", total, MaxItems); err != nil {
			return err
		}
	}
	return nil
}

func (s Section) validate() error {
	if err := errors.ValidateCount("items", s.Items); err != nil {
		return err
	}
	if err := errors.ValidateMax("items", s.Items, MaxItems); err != nil {
		return err
	}
	if s.Columns != nil {
		if err := errors.ValidateCount("columns", *s.Columns); err != nil {
			return err
		}
		if err := errors.ValidateMax("columns", *s.Columns, MaxColumns); err != nil {
			return err
		}
	}
	if s.Inset != nil {
		if err := validateInsets("inset", *s.Inset); err != nil {
			return err
		}
	}
	for _, f := range []struct {
		name  string
		value *float64
	}{
		{"inter_item_spacing", s.InterItemSpacing},
		{"column_spacing", s.ColumnSpacing},
		{"header_height", s.HeaderHeight},
		{"footer_height", s.FooterHeight},
	} {
		if f.value == nil {
			continue
		}
		if err := errors.ValidateLength(f.name, *f.value); err != nil {
			return err
		}
	}
	for i, h := range s.Heights {
		if err := errors.ValidateLength("heights", h); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScenario, err, "item %d", i)
		}
	}
	for i, r := range s.Ratios {
		if err := errors.ValidateLength("ratios.width", r.Width); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScenario, err, "item %d", i)
		}
		if err := errors.ValidateLength("ratios.height", r.Height); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScenario, err, "item %d", i)
		}
	}
	return nil
}

type field struct {
	name  string
	value float64
}

func validateInsets(name string, in geom.Insets) error {
	for _, v := range []float64{in.Top, in.Left, in.Bottom, in.Right} {
		if err := errors.ValidateLength(name, v); err != nil {
			return err
		}
	}
	return nil
}
