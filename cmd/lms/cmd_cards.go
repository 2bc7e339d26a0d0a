package main

import (
	"fmt"

	"lms/internal/catalog"
)

type CardsCmd struct {
	QueryFlags  `embed:""`
	Status      string `short:"s" help:"Filter by status (all, not-started, in-progress, completed)"`
	Interactive bool   `short:"i" help:"Choose search, status and sort interactively"`
}

func (cmd *CardsCmd) Run(g *Globals) error {
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
	fmt.Fprint(g.Out, g.Render.RenderCourseCards(courseListView(result.Items)))
	return nil
}
