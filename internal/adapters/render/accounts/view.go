package accounts

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bnema/nickserv-gender/internal/application"
)

const registeredLayout = "2006-01-02 15:04"

type RenderOptions struct {
	// Location is used for registration times; nil means UTC.
	Location *time.Location
}

func renderView(summaries []application.AccountSummary, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Registered Accounts"),
		s.header.Render(fmt.Sprintf("accounts: %d", len(summaries))),
	}

	if len(summaries) == 0 {
		lines = append(lines, s.empty.Render("No accounts registered."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, "", renderTable(summaries, opts, s))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderTable(summaries []application.AccountSummary, opts RenderOptions, s styles) string {
	rows := make([]table.Row, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, table.Row{
			string(summary.ID),
			summary.Name,
			registeredLabel(summary.RegisteredAt, opts),
			genderLabel(summary.Gender),
		})
	}

	t := table.New(
		table.WithColumns(columns(rows)),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
		table.WithStyles(s.table),
	)

	return t.View()
}

func columns(rows []table.Row) []table.Column {
	titles := []string{"ID", "NAME", "REGISTERED", "GENDER"}
	cols := make([]table.Column, len(titles))
	for i, title := range titles {
		width := ansi.StringWidth(title)
		for _, row := range rows {
			width = max(width, ansi.StringWidth(row[i]))
		}
		cols[i] = table.Column{Title: title, Width: width}
	}

	return cols
}

func registeredLabel(at time.Time, opts RenderOptions) string {
	if at.IsZero() {
		return "unknown"
	}

	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	return at.In(loc).Format(registeredLayout)
}

func genderLabel(gender string) string {
	if gender == "" {
		return "-"
	}

	return gender
}
