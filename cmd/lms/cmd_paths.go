package main

import (
	"fmt"

	"lms/internal/catalog"
	"lms/internal/listview"
)

type PathsCmd struct {
	QueryFlags  `embed:""`
	Names       bool `short:"n" help:"Output only path names (one per line)"`
	Interactive bool `short:"i" help:"Choose search and sort interactively"`
}

func (cmd *PathsCmd) Run(g *Globals) error {
	paths, err := g.loadPaths()
	if err != nil {
		return err
	}

	engine, err := newEngine[catalog.LearningPath](g, cmd.QueryFlags, "")
	if err != nil {
		return err
	}
	// Learning paths carry no status; a configured default status would hide them all.
	engine.SetStatusFilter(listview.StatusAll)
	if cmd.Interactive {
		ok, err := promptQuery(g, engine, "Learning Paths", false)
		if err != nil || !ok {
			return err
		}
	}

	result := engine.Derive(paths)
	if cmd.Names {
		for _, p := range result.Items {
			fmt.Fprintln(g.Out, p.Name)
		}
		return nil
	}

	fmt.Fprint(g.Out, g.Render.RenderPathGrid(pathListView(result.Items)))
	return nil
}
