package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders simple aligned columns for command output. Cells may
// contain ANSI sequences (swatches); width accounting uses lipgloss so
// styled cells still line up.
type Table struct {
	headers []string
	rows    [][]string
	indent  string
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers, indent: "  "}
}

// AddRow appends a row, padding short rows with empty cells.
func (t *Table) AddRow(cells ...string) *Table {
	for len(cells) < len(t.headers) {
		cells = append(cells, "")
	}
	t.rows = append(t.rows, cells)
	return t
}

// Render returns the formatted table.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(t.indent)
	for i, h := range t.headers {
		sb.WriteString(pad(Bold.Render(h), lipgloss.Width(h), widths[i]))
		if i < len(t.headers)-1 {
			sb.WriteString("  ")
		}
	}
	sb.WriteString("\n")

	for _, row := range t.rows {
		sb.WriteString(t.indent)
		for i, cell := range row {
			sb.WriteString(pad(cell, lipgloss.Width(cell), widths[i]))
			if i < len(row)-1 {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func pad(rendered string, visible, width int) string {
	if visible >= width {
		return rendered
	}
	return rendered + fmt.Sprintf("%*s", width-visible, "")
}
