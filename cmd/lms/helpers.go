package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"lms/cmd/lms/render"
	"lms/internal/catalog"
	"lms/internal/listview"
	"lms/internal/ui"

	"github.com/charmbracelet/huh"
)

type AmbiguousMatchError struct {
	Query   string
	Matches []string
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("multiple records match %q", e.Query)
}

func (e *AmbiguousMatchError) WriteMatches(w io.Writer) {
	fmt.Fprintln(w, "Multiple records match. Please be more specific:")
	for _, m := range e.Matches {
		fmt.Fprintf(w, "  - %s\n", m)
	}
}

func handleFindError(w io.Writer, err error) bool {
	var ambErr *AmbiguousMatchError
	if errors.As(err, &ambErr) {
		ambErr.WriteMatches(w)
		return true
	}
	return false
}

// QueryFlags are the list-view flags shared by every list command.
type QueryFlags struct {
	Query string `short:"q" help:"Search titles and categories (case-insensitive)"`
	Sort  string `help:"Sort order (dueDateAsc, dueDateDesc, titleAsc)"`
}

// newEngine builds a list-view engine seeded from settings and applies the
// command-line overrides through its setters.
func newEngine[R listview.Record](g *Globals, flags QueryFlags, status string) (*listview.Engine[R], error) {
	s := g.settings()
	engine := listview.New[R](
		listview.WithCollation(s.Collation()),
		listview.WithQuery(s.Query()),
	)

	if flags.Query != "" {
		engine.SetSearchTerm(flags.Query)
	}
	if status != "" {
		f, err := listview.ParseStatusFilter(status)
		if err != nil {
			return nil, err
		}
		engine.SetStatusFilter(f)
	}
	if flags.Sort != "" {
		k, err := listview.ParseSortKey(flags.Sort)
		if err != nil {
			return nil, err
		}
		engine.SetSortKey(k)
	}
	return engine, nil
}

// promptQuery lets the user edit the engine's query through a form and echoes
// the chosen query under title. It reports false when the user aborted.
func promptQuery[R listview.Record](g *Globals, engine *listview.Engine[R], title string, withStatus bool) (bool, error) {
	q := engine.Query()
	if err := g.runForm(ui.QueryForm(&q, withStatus)); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	engine.SetSearchTerm(strings.TrimSpace(q.Term))
	engine.SetStatusFilter(q.Status)
	engine.SetSortKey(q.Sort)
	fmt.Fprint(g.Out, ui.RenderQuery(title, engine.Query()))
	return true, nil
}

// progressPercent is the record's display percentage; records without
// progress show 0.
func progressPercent(r listview.Record) int {
	p, _ := listview.ProgressOf(r)
	return catalog.ClampPercent(p)
}

func courseListView(courses []catalog.Course) render.CourseListView {
	items := make([]render.CourseListItem, len(courses))
	for i, c := range courses {
		items[i] = render.CourseListItem{
			ID:       c.ID,
			Title:    c.Title,
			Category: c.Category,
			Duration: c.Duration,
			Status:   string(c.Status),
			Progress: progressPercent(c),
			DueDate:  c.DueDate,
		}
	}
	return render.CourseListView{Items: items}
}

func pathListView(paths []catalog.LearningPath) render.PathListView {
	items := make([]render.PathListItem, len(paths))
	for i, p := range paths {
		items[i] = render.PathListItem{
			ID:         p.ID,
			Name:       p.Name,
			Owner:      p.Owner,
			Courses:    p.Courses,
			Completion: progressPercent(p),
			Deadline:   p.Deadline,
		}
	}
	return render.PathListView{Items: items}
}

func (g *Globals) loadCourses() ([]catalog.Course, error) {
	courses, err := g.Source.Courses(g.context())
	if err != nil {
		return nil, fmt.Errorf("failed to load courses: %w", err)
	}
	return courses, nil
}

func (g *Globals) loadPaths() ([]catalog.LearningPath, error) {
	paths, err := g.Source.Paths(g.context())
	if err != nil {
		return nil, fmt.Errorf("failed to load learning paths: %w", err)
	}
	return paths, nil
}
