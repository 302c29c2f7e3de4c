package column

import (
	"testing"

	"github.com/matzehuels/masonry/pkg/geom"
)

// navLayout: two left-to-right sections of two columns (x=8 and x=112).
// Section 0 has items 0,2,4 | 1,3; section 1 has items 0,2 | 1.
func navLayout() *Layout {
	return prepared(newTestHost(216, 5, 3), nil, DefaultOptions())
}

func TestNextItem(t *testing.T) {
	l := navLayout()

	tests := []struct {
		name   string
		dir    Direction
		from   IndexPath
		want   IndexPath
		wantOK bool
	}{
		{name: "up within column", dir: Up, from: Path(0, 2), want: Path(0, 0), wantOK: true},
		{name: "up from first section", dir: Up, from: Path(0, 1), wantOK: false},
		{name: "up across sections left column", dir: Up, from: Path(1, 0), want: Path(0, 4), wantOK: true},
		{name: "up across sections right column", dir: Up, from: Path(1, 1), want: Path(0, 3), wantOK: true},
		{name: "down within column", dir: Down, from: Path(0, 0), want: Path(0, 2), wantOK: true},
		{name: "down across sections left column", dir: Down, from: Path(0, 4), want: Path(1, 0), wantOK: true},
		{name: "down across sections right column", dir: Down, from: Path(0, 3), want: Path(1, 1), wantOK: true},
		{name: "down from last section", dir: Down, from: Path(1, 2), wantOK: false},
		{name: "left within section", dir: Left, from: Path(0, 3), want: Path(0, 2), wantOK: true},
		{name: "left across sections", dir: Left, from: Path(1, 0), want: Path(0, 4), wantOK: true},
		{name: "left at first item", dir: Left, from: Path(0, 0), want: Path(0, 0), wantOK: true},
		{name: "right within section", dir: Right, from: Path(0, 3), want: Path(0, 4), wantOK: true},
		{name: "right across sections", dir: Right, from: Path(0, 4), want: Path(1, 0), wantOK: true},
		{name: "right at last item", dir: Right, from: Path(1, 2), want: Path(1, 2), wantOK: true},
		{name: "unknown item", dir: Right, from: Path(4, 0), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.NextItem(tt.dir, tt.from)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("NextItem(%v, %v) = %v, %v; want %v, %v", tt.dir, tt.from, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNextItemSkipsEmptySections(t *testing.T) {
	l := prepared(newTestHost(216, 2, 0, 2), nil, DefaultOptions())

	if got, _ := l.NextItem(Right, Path(0, 1)); got != Path(2, 0) {
		t.Errorf("NextItem(right, 0:1) = %v, want 2:0", got)
	}
	if got, _ := l.NextItem(Left, Path(2, 0)); got != Path(0, 1) {
		t.Errorf("NextItem(left, 2:0) = %v, want 0:1", got)
	}
	// Vertical moves only look at the adjacent section.
	if _, ok := l.NextItem(Up, Path(2, 0)); ok {
		t.Error("NextItem(up) into an empty section should miss")
	}
}

func TestNextItemFallsBackWhenNoColumnAligns(t *testing.T) {
	// Section 1 is a single narrow column at x=150..208, which only lines up
	// with section 0's right column.
	d := Funcs{
		ColumnCountFunc: func(section int) int { return []int{2, 1}[section] },
		SectionInsetFunc: func(section int) geom.Insets {
			if section == 1 {
				return geom.Insets{Top: 8, Left: 150, Bottom: 8, Right: 8}
			}
			return geom.Uniform(8)
		},
	}
	l := prepared(newTestHost(216, 4, 2), d, DefaultOptions())

	if got, ok := l.NextItem(Down, Path(0, 2)); !ok || got != Path(1, 0) {
		t.Errorf("NextItem(down, 0:2) = %v, %v; want 1:0", got, ok)
	}
	if got, ok := l.NextItem(Up, Path(1, 0)); !ok || got != Path(0, 3) {
		t.Errorf("NextItem(up, 1:0) = %v, %v; want 0:3", got, ok)
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		got, err := ParseDirection(d.String())
		if err != nil || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, err)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection(sideways) should fail")
	}
}

func TestParseIndexPath(t *testing.T) {
	tests := []struct {
		in      string
		want    IndexPath
		wantErr bool
	}{
		{in: "0:0", want: Path(0, 0)},
		{in: " 3:12 ", want: Path(3, 12)},
		{in: "3", wantErr: true},
		{in: "a:1", wantErr: true},
		{in: "1:b", wantErr: true},
		{in: "-1:0", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseIndexPath(tt.in)
		if (err != nil) != tt.wantErr || (!tt.wantErr && got != tt.want) {
			t.Errorf("ParseIndexPath(%q) = %v, %v; want %v, err %v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
	if got, _ := ParseIndexPath(Path(2, 7).String()); got != Path(2, 7) {
		t.Errorf("ParseIndexPath(String()) = %v", got)
	}
}

func TestParseRenderDirection(t *testing.T) {
	tests := []struct {
		in   string
		want RenderDirection
	}{
		{"left-to-right", LeftToRight},
		{"Right_To_Left", RightToLeft},
		{" shortest-first", ShortestFirst},
	}
	for _, tt := range tests {
		got, err := ParseRenderDirection(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseRenderDirection(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseRenderDirection("diagonal"); err == nil {
		t.Error("ParseRenderDirection(diagonal) should fail")
	}
}
