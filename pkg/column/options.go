package column

import (
	"fmt"
	"strings"

	"github.com/matzehuels/masonry/pkg/geom"
)

// RenderDirection selects the column each new item is placed into.
type RenderDirection int

const (
	// LeftToRight places item i into column i mod n.
	LeftToRight RenderDirection = iota
	// RightToLeft places item i into column (n-1) - (i mod n).
	RightToLeft
	// ShortestFirst places each item into the currently shortest column.
	ShortestFirst
)

var renderDirectionNames = map[RenderDirection]string{
	LeftToRight:   "left-to-right",
	RightToLeft:   "right-to-left",
	ShortestFirst: "shortest-first",
}

// String returns the kebab-case name used in config files and flags.
func (d RenderDirection) String() string {
	if s, ok := renderDirectionNames[d]; ok {
		return s
	}
	return fmt.Sprintf("RenderDirection(%d)", int(d))
}

// ParseRenderDirection parses a kebab-case direction name. Matching is case
// insensitive and accepts underscores in place of dashes.
func ParseRenderDirection(s string) (RenderDirection, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for d, name := range renderDirectionNames {
		if name == norm {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown render direction %q (want left-to-right, right-to-left or shortest-first)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d RenderDirection) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *RenderDirection) UnmarshalText(b []byte) error {
	v, err := ParseRenderDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Default layout values.
const (
	DefaultColumnCount      = 2
	DefaultColumnSpacing    = 8.0
	DefaultInterItemSpacing = 8.0
	DefaultItemHeight       = 50.0
	DefaultSectionInset     = 8.0
)

// Options are the layout-wide defaults used whenever the [Delegate] has no
// answer, plus the behavioral switches.
type Options struct {
	ColumnCount      int     `json:"column_count" toml:"column_count"`
	ColumnSpacing    float64 `json:"column_spacing" toml:"column_spacing"`
	InterItemSpacing float64 `json:"inter_item_spacing" toml:"inter_item_spacing"`
	HeaderHeight     float64 `json:"header_height" toml:"header_height"`
	FooterHeight     float64 `json:"footer_height" toml:"footer_height"`
	ItemHeight       float64 `json:"item_height" toml:"item_height"`

	// InsetSupplementaryViews makes headers and footers respect the section
	// insets instead of spanning the full visible width.
	InsetSupplementaryViews bool `json:"inset_supplementary_views" toml:"inset_supplementary_views"`

	// InvalidateOnBoundsChange makes any bounds size change invalidate the
	// layout. When false only width changes do.
	InvalidateOnBoundsChange bool `json:"invalidate_on_bounds_change" toml:"invalidate_on_bounds_change"`

	SectionInset    geom.Insets     `json:"section_inset" toml:"section_inset"`
	RenderDirection RenderDirection `json:"render_direction" toml:"render_direction"`

	// PinHeaders keeps section headers pinned to the top of the visible
	// region while their section scrolls past.
	PinHeaders bool `json:"pin_headers" toml:"pin_headers"`
}

// DefaultOptions returns the stock configuration: two left-to-right columns,
// 8pt spacing and insets, 50pt items, no headers or footers.
func DefaultOptions() Options {
	return Options{
		ColumnCount:              DefaultColumnCount,
		ColumnSpacing:            DefaultColumnSpacing,
		InterItemSpacing:         DefaultInterItemSpacing,
		ItemHeight:               DefaultItemHeight,
		InvalidateOnBoundsChange: true,
		SectionInset:             geom.Uniform(DefaultSectionInset),
		RenderDirection:          LeftToRight,
	}
}
