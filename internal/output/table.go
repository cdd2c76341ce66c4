// table.go draws the human-readable table format with lipgloss. Borders are
// plain ASCII so output pasted into tickets or piped through less survives.

package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// writeTable renders an ASCII-bordered table. An empty row set prints the
// header only.
func writeTable(w io.Writer, header []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.ASCIIBorder()).
		Headers(header...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
