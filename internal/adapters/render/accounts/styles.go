package accounts

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	empty  lipgloss.Style
	table  table.Styles
}

func newStyles() styles {
	tableStyles := table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		Bold(true).
		Foreground(lipgloss.Color("39")).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color("241"))
	tableStyles.Cell = tableStyles.Cell.Foreground(lipgloss.Color("252"))
	tableStyles.Selected = tableStyles.Cell

	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		header: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		empty:  lipgloss.NewStyle().Faint(true),
		table:  tableStyles,
	}
}
