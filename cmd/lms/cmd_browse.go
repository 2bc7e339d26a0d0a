package main

import (
	"fmt"
	"slices"
	"strings"

	"lms/internal/catalog"
	"lms/internal/listview"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type BrowseCmd struct {
	QueryFlags `embed:""`
	Status     string `short:"s" help:"Initial status filter"`
}

func (cmd *BrowseCmd) Run(g *Globals) error {
	courses, err := g.loadCourses()
	if err != nil {
		return err
	}
	engine, err := newEngine[catalog.Course](g, cmd.QueryFlags, cmd.Status)
	if err != nil {
		return err
	}
	return g.runProgram(newBrowseModel(courses, engine.Query(), engine.Collation()))
}

var (
	browseMuted  = lipgloss.NewStyle().Faint(true)
	browseHeader = lipgloss.NewStyle().Bold(true)
)

type browseModel struct {
	courses []catalog.Course
	memo    *listview.Memo[catalog.Course]
	query   listview.QueryState
	input   textinput.Model
	height  int
}

func newBrowseModel(courses []catalog.Course, q listview.QueryState, c listview.Collation) browseModel {
	in := textinput.New()
	in.Placeholder = "Search courses…"
	in.Prompt = "/ "
	in.SetValue(q.Term)
	in.Focus()
	return browseModel{
		courses: courses,
		memo:    listview.NewMemo[catalog.Course](c),
		query:   q,
		input:   in,
	}
}

func (m browseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.query.Status = cycle(listview.StatusFilters(), m.query.Status, 1)
			return m, nil
		case tea.KeyShiftTab:
			m.query.Status = cycle(listview.StatusFilters(), m.query.Status, -1)
			return m, nil
		case tea.KeyCtrlS:
			m.query.Sort = cycle(listview.SortKeys(), m.query.Sort, 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.query.Term = m.input.Value()
	return m, cmd
}

func (m browseModel) View() string {
	result := m.memo.Derive(m.courses, m.query)

	status := "All Status"
	if m.query.Status != listview.StatusAll {
		status = string(m.query.Status)
	}

	var sb strings.Builder
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(browseMuted.Render(fmt.Sprintf("%s · %s · %s", status, m.query.Sort.Label(), pluralResults(result.Count()))))
	sb.WriteString("\n\n")

	items := result.Items
	if m.height > 6 && len(items) > m.height-6 {
		items = items[:m.height-6]
	}
	if len(items) == 0 {
		sb.WriteString("No courses found.\n")
	} else {
		sb.WriteString(browseHeader.Render(fmt.Sprintf("%-30s %-12s %-11s %s", "TITLE", "CATEGORY", "STATUS", "DUE")))
		sb.WriteString("\n")
	}
	for _, c := range items {
		fmt.Fprintf(&sb, "%-30s %-12s %-11s %s\n", c.Title, orDash(c.Category), orDash(string(c.Status)), orDash(c.DueDate))
	}

	sb.WriteString("\n")
	sb.WriteString(browseMuted.Render("tab status · ctrl+s sort · esc quit"))
	sb.WriteString("\n")
	return sb.String()
}

func pluralResults(n int) string {
	if n == 1 {
		return "1 result"
	}
	return fmt.Sprintf("%d results", n)
}

// cycle returns the value step positions after cur, wrapping around.
func cycle[T comparable](values []T, cur T, step int) T {
	i := slices.Index(values, cur)
	if i < 0 {
		return values[0]
	}
	n := len(values)
	return values[((i+step)%n+n)%n]
}
