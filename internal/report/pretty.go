// internal/report/pretty.go
package report

import (
	"strconv"

	"biofx-core/hamming"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Align(lipgloss.Right).Padding(0, 1)
	unsetStyle  = cellStyle.Foreground(lipgloss.Color("#6B7280"))
)

// PrettyMatrix renders m as a bordered table indexed by sequence number.
// Cells outside the upper triangle are shown as "·".
func PrettyMatrix(m hamming.Matrix) string {
	n := m.Size()
	headers := make([]string, 0, n+1)
	headers = append(headers, "")
	for j := 0; j < n; j++ {
		headers = append(headers, strconv.Itoa(j))
	}
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		row := make([]string, 0, n+1)
		row = append(row, strconv.Itoa(i))
		for j := 0; j < n; j++ {
			if j <= i {
				row = append(row, "·")
				continue
			}
			row = append(row, strconv.Itoa(m[i][j]))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow, col == 0:
				return headerStyle
			case col-1 <= row:
				return unsetStyle
			default:
				return cellStyle
			}
		})
	return t.Render()
}
