package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"lms/internal/catalog"
)

type CoursesCmd struct {
	QueryFlags  `embed:""`
	Status      string `short:"s" help:"Filter by status (all, not-started, in-progress, completed)"`
	Names       bool   `short:"n" help:"Output only course titles (one per line)"`
	Plain       bool   `help:"Plain tab-aligned output for scripting"`
	Interactive bool   `short:"i" help:"Choose search, status and sort interactively"`
}

func (cmd *CoursesCmd) Run(g *Globals) error {
	courses, err := g.loadCourses()
	if err != nil {
		return err
	}

	engine, err := newEngine[catalog.Course](g, cmd.QueryFlags, cmd.Status)
	if err != nil {
		return err
	}
	if cmd.Interactive {
		ok, err := promptQuery(g, engine, "My Courses", true)
		if err != nil || !ok {
			return err
		}
	}

	result := engine.Derive(courses)
	g.logger().Debug("courses derived", "query", engine.Query(), "results", result.Count())

	switch {
	case cmd.Names:
		for _, c := range result.Items {
			fmt.Fprintln(g.Out, c.Title)
		}
		return nil
	case cmd.Plain:
		fmt.Fprintln(g.errOut(), pluralResults(result.Count()))
		return printCourses(g, result.Items)
	}

	fmt.Fprint(g.Out, g.Render.RenderCourseTable(courseListView(result.Items)))
	return nil
}

func printCourses(g *Globals, courses []catalog.Course) error {
	w := tabwriter.NewWriter(g.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tSTATUS\tPROGRESS\tDUE")
	fmt.Fprintln(w, "--\t-----\t--------\t------\t--------\t---")

	for _, c := range courses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d%%\t%s\n",
			c.ID, c.Title, orDash(c.Category), orDash(string(c.Status)),
			progressPercent(c), orDash(c.DueDate))
	}

	return w.Flush()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
