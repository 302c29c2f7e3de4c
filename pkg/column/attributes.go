package column

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/masonry/pkg/geom"
)

// Kind identifies the element an [Attributes] value describes.
type Kind int

const (
	KindCell Kind = iota
	KindHeader
	KindFooter
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCell:
		return "cell"
	case KindHeader:
		return "header"
	case KindFooter:
		return "footer"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "cell":
		*k = KindCell
	case "header":
		*k = KindHeader
	case "footer":
		*k = KindFooter
	default:
		return fmt.Errorf("unknown element kind %q", b)
	}
	return nil
}

// IndexPath identifies an item by section and position within the section.
// Headers and footers use Item 0.
type IndexPath struct {
	Section int `json:"section"`
	Item    int `json:"item"`
}

// Path is shorthand for IndexPath{Section: section, Item: item}.
func Path(section, item int) IndexPath {
	return IndexPath{Section: section, Item: item}
}

// String formats the path as "section:item".
func (p IndexPath) String() string { return fmt.Sprintf("%d:%d", p.Section, p.Item) }

// ParseIndexPath parses the "section:item" form produced by String.
func ParseIndexPath(s string) (IndexPath, error) {
	sec, item, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return IndexPath{}, fmt.Errorf("index path %q: want section:item", s)
	}
	si, err := strconv.Atoi(sec)
	if err != nil {
		return IndexPath{}, fmt.Errorf("index path %q: bad section: %w", s, err)
	}
	ii, err := strconv.Atoi(item)
	if err != nil {
		return IndexPath{}, fmt.Errorf("index path %q: bad item: %w", s, err)
	}
	if si < 0 || ii < 0 {
		return IndexPath{}, fmt.Errorf("index path %q: negative index", s)
	}
	return Path(si, ii), nil
}

// Less orders paths by section, then item.
func (p IndexPath) Less(o IndexPath) bool {
	if p.Section != o.Section {
		return p.Section < o.Section
	}
	return p.Item < o.Item
}

// Attributes is the computed geometry of one item, header or footer.
type Attributes struct {
	Kind     Kind      `json:"kind"`
	Path     IndexPath `json:"path"`
	Frame    geom.Rect `json:"frame"`
	Alpha    float64   `json:"alpha"`
	Floating bool      `json:"floating,omitempty"`
}
