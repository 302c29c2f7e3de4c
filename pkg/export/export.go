// Package export converts a prepared column layout into a serializable
// geometry document.
//
// A [Document] is the interchange format between the layout engine and
// everything downstream of it: the render sinks, the cache and the HTTP API.
// It records every section's frame, its header and footer at their natural
// (unpinned) positions, and its items in index order.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/masonry/pkg/column"
	"github.com/matzehuels/masonry/pkg/geom"
)

// Document is the serialized result of one prepare pass.
type Document struct {
	Name        string         `json:"name,omitempty"`
	RunID       string         `json:"run_id,omitempty"`
	Viewport    geom.Rect      `json:"viewport"`
	ContentSize geom.Size      `json:"content_size"`
	ItemWidth   float64        `json:"item_width"`
	Options     column.Options `json:"options"`
	Sections    []Section      `json:"sections"`
}

// Section is one laid-out section.
type Section struct {
	Index     int                 `json:"index"`
	Frame     geom.Rect           `json:"frame"`
	Columns   int                 `json:"columns"`
	ItemWidth float64             `json:"item_width"`
	Header    *column.Attributes  `json:"header,omitempty"`
	Footer    *column.Attributes  `json:"footer,omitempty"`
	Items     []column.Attributes `json:"items"`
}

// FromLayout snapshots l. The layout should already be prepared; an
// unprepared layout yields an empty document.
func FromLayout(l *column.Layout, name string, viewport geom.Rect) Document {
	doc := Document{
		Name:        name,
		Viewport:    viewport,
		ContentSize: l.ContentSize(),
		ItemWidth:   l.ItemWidth(),
		Options:     l.Options(),
		Sections:    make([]Section, l.NumberOfSections()),
	}
	for i := range doc.Sections {
		doc.Sections[i] = Section{
			Index:     i,
			Frame:     l.SectionFrame(i),
			Columns:   l.NumberOfColumns(i),
			ItemWidth: l.ItemWidthInSection(i),
			Items:     make([]column.Attributes, 0, l.NumberOfItems(i)),
		}
	}
	for _, a := range l.Attributes() {
		sec := &doc.Sections[a.Path.Section]
		switch a.Kind {
		case column.KindHeader:
			sec.Header = &a
		case column.KindFooter:
			sec.Footer = &a
		default:
			sec.Items = append(sec.Items, a)
		}
	}
	return doc
}

// Attributes returns every element in pass order: for each section its
// header, items and footer.
func (d Document) Attributes() []column.Attributes {
	var out []column.Attributes
	for _, s := range d.Sections {
		if s.Header != nil {
			out = append(out, *s.Header)
		}
		out = append(out, s.Items...)
		if s.Footer != nil {
			out = append(out, *s.Footer)
		}
	}
	return out
}

// ItemCount returns the number of items across all sections.
func (d Document) ItemCount() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Items)
	}
	return n
}

// Marshal encodes d as indented JSON.
func Marshal(d Document) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Unmarshal decodes a document.
func Unmarshal(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("decode document: %w", err)
	}
	return d, nil
}

// Write encodes d to w.
func Write(w io.Writer, d Document) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadFile loads a document written by [WriteFile].
func ReadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	return Unmarshal(data)
}

// WriteFile writes d to path.
func WriteFile(path string, d Document) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
