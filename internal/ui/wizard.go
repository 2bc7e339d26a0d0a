package ui

import (
	"strings"

	"lms/internal/listview"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	summarySymbol = "◇"
	separator     = " · "
	borderTop     = "┌"
	borderSide    = "│"
	borderBottom  = "└"
)

func WizardTheme() *huh.Theme {
	t := huh.ThemeBase()
	red := lipgloss.Color("1")
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.SetString("✗").Foreground(red)
	t.Blurred.ErrorMessage = t.Blurred.ErrorMessage.SetString("✗").Foreground(red)
	return t
}

type Field struct {
	Label string
	Value string
}

func borderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

// QueryFields describes q as collapsed summary fields. An empty search term
// yields an empty value.
func QueryFields(q listview.QueryState) []Field {
	status := "All Status"
	if q.Status != listview.StatusAll {
		status = string(q.Status)
	}
	return []Field{
		{Label: "Search", Value: q.Term},
		{Label: "Status", Value: status},
		{Label: "Sort", Value: q.Sort.Label()},
	}
}

// RenderQuery summarises the query behind a list view inside a titled frame.
// Fields without a value are left out.
func RenderQuery(title string, q listview.QueryState) string {
	return renderSummary(title, QueryFields(q))
}

func renderSummary(title string, fields []Field) string {
	var b strings.Builder

	border := borderStyle()

	b.WriteString(border.Render(borderTop))
	b.WriteString(" ")
	b.WriteString(title)
	b.WriteString("\n")

	b.WriteString(border.Render(borderSide))
	b.WriteString("\n")

	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		b.WriteString(summarySymbol)
		b.WriteString(" ")
		b.WriteString(f.Label)
		b.WriteString(separator)
		b.WriteString(f.Value)
		b.WriteString("\n")
	}

	b.WriteString(border.Render(borderBottom))
	b.WriteString("\n")

	return b.String()
}

// QueryForm prompts for a search term, status filter and sort key, writing
// the answers into q.
func QueryForm(q *listview.QueryState, withStatus bool) *huh.Form {
	statusOpts := []huh.Option[listview.StatusFilter]{huh.NewOption("All Status", listview.StatusAll)}
	for _, s := range listview.Statuses() {
		statusOpts = append(statusOpts, huh.NewOption(string(s), listview.FilterFor(s)))
	}
	var sortOpts []huh.Option[listview.SortKey]
	for _, k := range listview.SortKeys() {
		sortOpts = append(sortOpts, huh.NewOption(k.Label(), k))
	}

	fields := []huh.Field{
		huh.NewInput().
			Title("Search").
			Description("Matches title or category; leave empty for all").
			Value(&q.Term),
	}
	if withStatus {
		fields = append(fields, huh.NewSelect[listview.StatusFilter]().
			Title("Status").
			Options(statusOpts...).
			Value(&q.Status))
	}
	fields = append(fields, huh.NewSelect[listview.SortKey]().
		Title("Sort").
		Options(sortOpts...).
		Value(&q.Sort))

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(WizardTheme())
}
