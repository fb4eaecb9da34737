// Package static provides non-interactive terminal output components.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/simeg/git-x-sub001/internal/ui/styles"
)

// NoHighlight disables row highlighting in RenderTable.
const NoHighlight = -1

// RenderTable creates a borderless table with aligned columns. Column widths
// are computed by lipgloss/table from the content. The row at index
// highlight (0-based, NoHighlight for none) is rendered in the accent style.
func RenderTable(headers []string, rows [][]string, highlight int) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			case row == highlight && col == 0:
				return styles.AccentStyle.PaddingRight(2)
			default:
				return lipgloss.NewStyle().PaddingRight(2)
			}
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}
