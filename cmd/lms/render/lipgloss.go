package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"lms/internal/catalog"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	cardWidth = 36
	barWidth  = 20
)

type LipglossRenderer struct {
	width int
	r     *lipgloss.Renderer

	titleStyle     lipgloss.Style
	mutedStyle     lipgloss.Style
	cardStyle      lipgloss.Style
	headingStyle   lipgloss.Style
	completedStyle lipgloss.Style
	progressStyle  lipgloss.Style
	idleStyle      lipgloss.Style
	barFillStyle   lipgloss.Style
	barEmptyStyle  lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:          width,
		r:              r,
		titleStyle:     r.NewStyle().Bold(true),
		mutedStyle:     r.NewStyle().Faint(true),
		cardStyle:      r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(cardWidth),
		headingStyle:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		completedStyle: r.NewStyle().Foreground(lipgloss.Color("10")),
		progressStyle:  r.NewStyle().Foreground(lipgloss.Color("11")),
		idleStyle:      r.NewStyle().Faint(true),
		barFillStyle:   r.NewStyle().Foreground(lipgloss.Color("12")),
		barEmptyStyle:  r.NewStyle().Faint(true),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

// WithDarkBackground overrides background detection for the theme setting.
func (r *LipglossRenderer) WithDarkBackground(dark bool) *LipglossRenderer {
	r.r.SetHasDarkBackground(dark)
	return r
}

func resultCount(n int) string {
	if n == 1 {
		return "1 result\n"
	}
	return fmt.Sprintf("%d results\n", n)
}

func (r *LipglossRenderer) RenderCourseTable(view CourseListView) string {
	var sb strings.Builder
	sb.WriteString(r.mutedStyle.Render(strings.TrimSuffix(resultCount(view.Count()), "\n")))
	sb.WriteString("\n")
	if view.IsEmpty() {
		sb.WriteString("No courses found.\n")
		return sb.String()
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(table.Row{"Title", "Category", "Duration", "Status", "Progress", "Due"})
	for _, c := range view.Items {
		t.AppendRow(table.Row{
			c.Title,
			c.Category,
			c.Duration,
			r.statusBadge(c.Status),
			r.progressBar(c.Progress, barWidth/2),
			c.DueDate,
		})
	}
	sb.WriteString(t.Render())
	sb.WriteString("\n")
	return sb.String()
}

func (r *LipglossRenderer) RenderCourseCards(view CourseListView) string {
	var sb strings.Builder
	sb.WriteString(r.mutedStyle.Render(strings.TrimSuffix(resultCount(view.Count()), "\n")))
	sb.WriteString("\n")
	if view.IsEmpty() {
		sb.WriteString("No courses found.\n")
		return sb.String()
	}

	cards := make([]string, 0, len(view.Items))
	for _, c := range view.Items {
		cards = append(cards, r.courseCard(c))
	}
	sb.WriteString(r.grid(cards))
	sb.WriteString("\n")
	return sb.String()
}

func (r *LipglossRenderer) RenderPathGrid(view PathListView) string {
	var sb strings.Builder
	sb.WriteString(r.mutedStyle.Render(strings.TrimSuffix(resultCount(view.Count()), "\n")))
	sb.WriteString("\n")
	if view.IsEmpty() {
		sb.WriteString("No learning paths found.\n")
		return sb.String()
	}

	cards := make([]string, 0, len(view.Items))
	for _, p := range view.Items {
		cards = append(cards, r.pathCard(p))
	}
	sb.WriteString(r.grid(cards))
	sb.WriteString("\n")
	return sb.String()
}

func (r *LipglossRenderer) RenderDashboard(view DashboardView) string {
	var sb strings.Builder

	stats := make([]string, 0, len(view.Stats))
	for _, s := range view.Stats {
		lines := []string{
			r.mutedStyle.Render(strings.ToUpper(s.Title)),
			r.titleStyle.Render(s.Value),
		}
		if s.Sub != "" {
			lines = append(lines, r.mutedStyle.Render(s.Sub))
		}
		stats = append(stats, r.cardStyle.Width(cardWidth/2+4).Render(strings.Join(lines, "\n")))
	}
	if len(stats) > 0 {
		sb.WriteString(r.grid(stats))
		sb.WriteString("\n\n")
	}

	sb.WriteString(r.headingStyle.Render("Continue where you left off"))
	sb.WriteString("\n")
	if view.Continue.IsEmpty() {
		sb.WriteString("Nothing in progress.\n")
		return sb.String()
	}
	cards := make([]string, 0, len(view.Continue.Items))
	for _, c := range view.Continue.Items {
		cards = append(cards, r.courseCard(c))
	}
	sb.WriteString(r.grid(cards))
	sb.WriteString("\n")
	return sb.String()
}

func (r *LipglossRenderer) courseCard(c CourseListItem) string {
	header := c.Category
	if c.Duration != "" {
		header += "  ·  " + c.Duration
	}
	lines := []string{
		r.mutedStyle.Render(header),
		r.titleStyle.Render(c.Title),
		r.progressBar(c.Progress, barWidth),
	}
	if c.DueDate != "" {
		lines = append(lines, r.mutedStyle.Render("Due "+c.DueDate))
	}
	if c.Status != "" {
		lines = append(lines, r.statusBadge(c.Status))
	}
	return r.cardStyle.Render(strings.Join(lines, "\n"))
}

func (r *LipglossRenderer) pathCard(p PathListItem) string {
	lines := []string{
		r.titleStyle.Render(p.Name),
		r.mutedStyle.Render("ID: " + p.ID),
	}
	if p.Owner != "" {
		lines = append(lines, "Owner: "+p.Owner)
	}
	lines = append(lines, fmt.Sprintf("Courses: %d", p.Courses))
	if p.Deadline != "" {
		lines = append(lines, "Deadline: "+p.Deadline)
	}
	lines = append(lines, r.progressBar(p.Completion, barWidth))
	return r.cardStyle.Render(strings.Join(lines, "\n"))
}

// grid lays blocks out left to right, wrapping to fit the renderer width.
func (r *LipglossRenderer) grid(blocks []string) string {
	if len(blocks) == 0 {
		return ""
	}
	perRow := max(1, r.width/(lipgloss.Width(blocks[0])+1))

	var rows []string
	for i := 0; i < len(blocks); i += perRow {
		end := min(len(blocks), i+perRow)
		row := make([]string, 0, end-i)
		for j, b := range blocks[i:end] {
			if j > 0 {
				row = append(row, " ")
			}
			row = append(row, b)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *LipglossRenderer) statusBadge(status string) string {
	switch status {
	case "Completed":
		return r.completedStyle.Render(status)
	case "In Progress":
		return r.progressStyle.Render(status)
	default:
		return r.idleStyle.Render(status)
	}
}

// progressBar draws a percentage; stored values outside 0-100 are clamped.
func (r *LipglossRenderer) progressBar(pct, width int) string {
	pct = catalog.ClampPercent(pct)
	filled := pct * width / 100
	return r.barFillStyle.Render(strings.Repeat("█", filled)) +
		r.barEmptyStyle.Render(strings.Repeat("░", width-filled)) +
		fmt.Sprintf(" %3d%%", pct)
}
