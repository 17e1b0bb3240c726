// Package skyview renders the default star catalog as an interactive
// terminal table, coloring each row by its parsed spectral classification.
package skyview

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/nightfall/orrery/internal/astro"
	"github.com/nightfall/orrery/internal/stellar"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("57"))

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// row is one catalog entry paired with its parsed classification.
type row struct {
	star  astro.Star
	class stellar.Class
}

// Model is the sky view's Bubble Tea model: a scrollable, color-coded table
// of the default star catalog sorted by apparent magnitude.
type Model struct {
	rows   []row
	cursor int
	width  int
	height int
}

// New builds a Model over the module's default star catalog.
func New() Model {
	catalog := astro.DefaultStarCatalog()
	rows := make([]row, len(catalog.Stars))
	for i, s := range catalog.Stars {
		rows[i] = row{star: s, class: s.Class()}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].star.Mag < rows[j].star.Mag })
	return Model{rows: rows}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("orrery sky — %d cataloged stars", len(m.rows))))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-18s %6s  %-14s  %s", "Name", "Mag", "Class", "")))
	b.WriteString("\n")

	start := 0
	end := len(m.rows)
	if m.height > 4 && end > m.height-4 {
		start = m.cursor - (m.height-4)/2
		if start < 0 {
			start = 0
		}
		end = start + (m.height - 4)
		if end > len(m.rows) {
			end = len(m.rows)
			start = end - (m.height - 4)
			if start < 0 {
				start = 0
			}
		}
	}

	for i := start; i < end; i++ {
		r := m.rows[i]
		swatch := colorSwatch(r.class)
		line := fmt.Sprintf("%-18s %6.2f  %-14s  %s", r.star.Name, r.star.Mag, r.class.Str(), swatch)
		if i == m.cursor {
			b.WriteString(selectedRowStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render("↑/↓ or j/k to scroll, q to quit"))
	return b.String()
}

// RenderPlainTable renders the default catalog as plain text lines, sorted
// by apparent magnitude, for output that isn't attached to a terminal.
func RenderPlainTable() []string {
	m := New()
	lines := make([]string, 0, len(m.rows)+1)
	lines = append(lines, fmt.Sprintf("%-18s %6s  %-14s", "Name", "Mag", "Class"))
	for _, r := range m.rows {
		lines = append(lines, fmt.Sprintf("%-18s %6.2f  %-14s", r.star.Name, r.star.Mag, r.class.Str()))
	}
	return lines
}

// colorSwatch renders a small block styled with c's apparent color,
// converted through go-colorful so the floating-point RGB triple maps
// cleanly onto a terminal-safe hex color.
func colorSwatch(c stellar.Class) string {
	r, g, b := c.ApparentColor()
	col := colorful.Color{R: r, G: g, B: b}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(col.Hex()))
	return style.Render("███")
}
