package export

import (
	"bytes"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/masonry/pkg/column"
	"github.com/matzehuels/masonry/pkg/geom"
	"github.com/matzehuels/masonry/pkg/scenario"
)

func testDocument(t *testing.T) Document {
	t.Helper()
	s, err := scenario.Parse([]byte(`
[viewport]
width = 216
height = 400

[layout]
header_height = 20
footer_height = 10

[[sections]]
items = 3

[[sections]]
columns = 1
items = 1
`), scenario.FormatTOML)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	l := s.NewLayout()
	l.Prepare()
	return FromLayout(l, "docs", s.ContentVisibleRect())
}

func TestFromLayout(t *testing.T) {
	d := testDocument(t)

	if d.Name != "docs" || len(d.Sections) != 2 {
		t.Fatalf("document = %+v", d)
	}
	if d.ItemCount() != 4 {
		t.Errorf("ItemCount() = %d, want 4", d.ItemCount())
	}
	if d.Viewport != geom.NewRect(0, 0, 216, 400) {
		t.Errorf("Viewport = %v", d.Viewport)
	}

	s0, s1 := d.Sections[0], d.Sections[1]
	if s0.Columns != 2 || s1.Columns != 1 {
		t.Errorf("Columns = %d, %d; want 2, 1", s0.Columns, s1.Columns)
	}
	if s0.ItemWidth != 96 || s1.ItemWidth != 200 {
		t.Errorf("ItemWidth = %v, %v; want 96, 200", s0.ItemWidth, s1.ItemWidth)
	}
	// The document-level width is the last section's.
	if d.ItemWidth != 200 {
		t.Errorf("Document.ItemWidth = %v, want 200", d.ItemWidth)
	}
	if s0.Header == nil || s0.Footer == nil || s0.Header.Kind != column.KindHeader {
		t.Fatalf("section 0 supplementary = %+v, %+v", s0.Header, s0.Footer)
	}
	for i, a := range s0.Items {
		if a.Path != column.Path(0, i) {
			t.Errorf("Items[%d].Path = %v", i, a.Path)
		}
	}
	if d.ContentSize.Height != s1.Frame.MaxY() {
		t.Errorf("ContentSize.Height = %v, want %v", d.ContentSize.Height, s1.Frame.MaxY())
	}
}

func TestAttributesOrder(t *testing.T) {
	d := testDocument(t)

	var kinds []column.Kind
	for _, a := range d.Attributes() {
		kinds = append(kinds, a.Kind)
	}
	want := []column.Kind{
		column.KindHeader, column.KindCell, column.KindCell, column.KindCell, column.KindFooter,
		column.KindHeader, column.KindCell, column.KindFooter,
	}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("Attributes() kinds = %v, want %v", kinds, want)
	}
}

func TestRoundTrip(t *testing.T) {
	d := testDocument(t)
	d.RunID = "run-1"

	var buf bytes.Buffer
	if err := Write(&buf, d); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	back, err := Unmarshal(buf.Bytes())
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if !reflect.DeepEqual(back, d) {
		t.Errorf("round trip changed the document:\n got %+v\nwant %+v", back, d)
	}

	path := filepath.Join(t.TempDir(), "doc.json")
	if err := WriteFile(path, d); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	fromFile, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !reflect.DeepEqual(fromFile, d) {
		t.Error("file round trip changed the document")
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	if _, err := Unmarshal([]byte("{")); err == nil {
		t.Error("Unmarshal of truncated JSON should fail")
	}
}

func TestFromUnpreparedLayout(t *testing.T) {
	s := scenario.New()
	s.Viewport.Width = 100
	s.Sections = []scenario.Section{{Items: 2}}

	d := FromLayout(s.NewLayout(), "", s.ContentVisibleRect())
	if len(d.Sections) != 0 || d.ItemCount() != 0 {
		t.Errorf("unprepared layout produced %+v", d)
	}
}
