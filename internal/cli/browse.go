package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/masonry/pkg/column"
	"github.com/matzehuels/masonry/pkg/geom"
	"github.com/matzehuels/masonry/pkg/pipeline"
	"github.com/matzehuels/masonry/pkg/scenario"
)

var (
	browseSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	browseHeaderStyle   = lipgloss.NewStyle().Foreground(colorYellow)
	browseDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the interactive navigator.
func (c *CLI) browseCommand() *cobra.Command {
	var ov pipeline.Overrides

	cmd := &cobra.Command{
		Use:   "browse [scenario]",
		Short: "Navigate a layout with the arrow keys",
		Long: `Navigate a layout with the arrow keys.

The arrow keys (or h/j/k/l) move the selection the way a keyboard focus
engine would. The viewport follows the selection and pinned headers track
the scroll offset.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, l, err := loadLayout(args[0], ov, nil)
			if err != nil {
				return err
			}
			c.Logger.Debug("browsing", "sections", l.NumberOfSections(), "content", l.ContentSize())
			_, err = tea.NewProgram(NewBrowseModel(s, l), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
	registerOverrides(cmd, &ov)
	return cmd
}

// =============================================================================
// BrowseModel - Interactive layout navigation
// =============================================================================

// BrowseModel is the bubbletea model for keyboard navigation over a
// prepared layout. The scenario doubles as the layout's host, so moving the
// scroll offset here is what the layout sees when pinning headers.
type BrowseModel struct {
	Scenario *scenario.Scenario
	Layout   *column.Layout
	Cursor   column.IndexPath
	HasItems bool
	Rows     int
}

// NewBrowseModel selects the first item of the first non-empty section.
func NewBrowseModel(s *scenario.Scenario, l *column.Layout) BrowseModel {
	m := BrowseModel{Scenario: s, Layout: l, Rows: 12}
	for sec := 0; sec < l.NumberOfSections(); sec++ {
		if l.NumberOfItems(sec) > 0 {
			m.Cursor = column.Path(sec, 0)
			m.HasItems = true
			break
		}
	}
	return m
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(column.Up)
		case "down", "j":
			m.move(column.Down)
		case "left", "h":
			m.move(column.Left)
		case "right", "l":
			m.move(column.Right)
		case "pgdown", " ":
			m.scrollBy(m.Scenario.Viewport.Height)
		case "pgup":
			m.scrollBy(-m.Scenario.Viewport.Height)
		}
	case tea.WindowSizeMsg:
		m.Rows = max(msg.Height-10, 5)
	}
	return m, nil
}

// move follows a directional step and scrolls the new item into view.
func (m *BrowseModel) move(dir column.Direction) {
	if !m.HasItems {
		return
	}
	next, ok := m.Layout.NextItem(dir, m.Cursor)
	if !ok {
		return
	}
	m.Cursor = next
	if target, ok := m.Layout.ScrollTarget(next, column.ScrollTop); ok {
		m.reveal(target)
	}
}

// reveal scrolls the minimum distance that makes r visible.
func (m *BrowseModel) reveal(r geom.Rect) {
	visible := m.Scenario.ContentVisibleRect()
	switch {
	case r.Y < visible.Y:
		m.scrollTo(r.Y)
	case r.MaxY() > visible.MaxY():
		m.scrollTo(r.MaxY() - visible.Height)
	}
}

func (m *BrowseModel) scrollBy(dy float64) {
	m.scrollTo(m.Scenario.Viewport.Offset.Y + dy)
}

func (m *BrowseModel) scrollTo(y float64) {
	limit := math.Max(0, m.Layout.ContentSize().Height-m.Scenario.Viewport.Height)
	y = math.Min(math.Max(y, 0), limit)
	m.Scenario.SetOffset(geom.Point{X: m.Scenario.Viewport.Offset.X, Y: y})
}

// Visible returns the headers and items inside the viewport, headers first
// for each section.
func (m BrowseModel) Visible() []column.Attributes {
	visible := m.Scenario.ContentVisibleRect()
	var out []column.Attributes
	for sec := 0; sec < m.Layout.NumberOfSections(); sec++ {
		if !m.Layout.SectionFrame(sec).Intersects(visible) {
			continue
		}
		if h, ok := m.Layout.AttributesForSupplementary(column.KindHeader, column.Path(sec, 0)); ok && h.Frame.Intersects(visible) {
			out = append(out, h)
		}
	}
	return append(out, m.Layout.ItemsIntersecting(visible)...)
}

func (m BrowseModel) View() string {
	var b strings.Builder

	title := "Layout"
	if m.Scenario.Name != "" {
		title = m.Scenario.Name
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(browseDimStyle.Render("←↑↓→ move  pgup/pgdn scroll  q quit"))
	b.WriteString("\n\n")

	if !m.HasItems {
		b.WriteString(browseDimStyle.Render("no items"))
		b.WriteString("\n")
		return b.String()
	}

	attrs := m.Visible()
	if len(attrs) > m.Rows {
		attrs = attrs[:m.Rows]
	}
	rows := make([][]string, len(attrs))
	for i, a := range attrs {
		marker := "  "
		if a.Kind == column.KindCell && a.Path == m.Cursor {
			marker = "▸ "
		}
		rows[i] = []string{marker, a.Path.String(), a.Kind.String(), formatRect(a.Frame)}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Path", "Kind", "Frame").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if row >= len(attrs) {
				return lipgloss.NewStyle()
			}
			a := attrs[row]
			switch {
			case a.Kind == column.KindCell && a.Path == m.Cursor:
				return browseSelectedStyle
			case a.Kind == column.KindHeader:
				return browseHeaderStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	size := m.Layout.ContentSize()
	b.WriteString(browseDimStyle.Render(fmt.Sprintf("  %s  offset %s of %s",
		m.Cursor, formatNum(m.Scenario.Viewport.Offset.Y), formatNum(size.Height))))

	return b.String()
}
