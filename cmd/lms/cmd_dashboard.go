package main

import (
	"fmt"

	"lms/cmd/lms/render"
	"lms/internal/catalog"
	"lms/internal/listview"
)

const continueLimit = 2

type DashboardCmd struct{}

func (cmd *DashboardCmd) Run(g *Globals) error {
	courses, err := g.loadCourses()
	if err != nil {
		return err
	}
	paths, err := g.loadPaths()
	if err != nil {
		return err
	}

	fmt.Fprint(g.Out, g.Render.RenderDashboard(buildDashboard(g, courses, paths)))
	return nil
}

func buildDashboard(g *Globals, courses []catalog.Course, paths []catalog.LearningPath) render.DashboardView {
	engine := listview.New[catalog.Course](listview.WithCollation(g.settings().Collation()))
	engine.SetStatusFilter(listview.FilterFor(listview.StatusInProgress))
	inProgress := engine.Derive(courses)

	var completed, progressSum int
	nextDue := ""
	for _, c := range courses {
		progressSum += progressPercent(c)
		if c.Status == listview.StatusCompleted {
			completed++
			continue
		}
		if c.DueDate != "" && (nextDue == "" || c.DueDate < nextDue) {
			nextDue = c.DueDate
		}
	}

	var pathsInProgress int
	for _, p := range paths {
		if pct := progressPercent(p); pct > 0 && pct < 100 {
			pathsInProgress++
		}
	}

	activeSub := "nothing due"
	if nextDue != "" {
		activeSub = "next due " + nextDue
	}
	avg := 0
	if len(courses) > 0 {
		avg = progressSum / len(courses)
	}

	continueItems := inProgress.Items[:min(continueLimit, inProgress.Count())]
	return render.DashboardView{
		Stats: []render.StatCard{
			{Title: "Active Courses", Value: fmt.Sprint(inProgress.Count()), Sub: activeSub},
			{Title: "Completed", Value: fmt.Sprint(completed), Sub: "All time"},
			{Title: "Learning Paths", Value: fmt.Sprint(len(paths)), Sub: fmt.Sprintf("%d in progress", pathsInProgress)},
			{Title: "Avg. Progress", Value: fmt.Sprintf("%d%%", avg), Sub: fmt.Sprintf("across %d courses", len(courses))},
		},
		Continue: courseListView(continueItems),
	}
}
