package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// cellStyle picks the style for a data cell; nil means the default.
type cellStyle func(re *lipgloss.Renderer, row, col int) *lipgloss.Style

// printTable renders rows for w. Colours follow w's capabilities, so piped output is plain.
func printTable(w io.Writer, headers []string, rows [][]string, style cellStyle) {
	re := lipgloss.NewRenderer(w)
	header := re.NewStyle().Bold(true).Padding(0, 1)
	cell := re.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(re.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if style != nil {
				if s := style(re, row, col); s != nil {
					return s.Padding(0, 1)
				}
			}
			return cell
		})
	fmt.Fprintln(w, t.Render())
}
