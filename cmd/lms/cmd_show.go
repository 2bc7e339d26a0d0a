package main

import (
	"fmt"
	"strings"

	"lms/internal/catalog"
	"lms/internal/listview"
)

type ShowCmd struct {
	Name string `arg:"" help:"Course or learning path id, or part of its title"`
}

func (cmd *ShowCmd) Run(g *Globals) error {
	courses, err := g.loadCourses()
	if err != nil {
		return err
	}
	paths, err := g.loadPaths()
	if err != nil {
		return err
	}

	course, path, err := findRecord(g, courses, paths, cmd.Name)
	if err != nil {
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	if course != nil {
		fmt.Fprintf(g.Out, "ID:       %s\n", course.ID)
		fmt.Fprintf(g.Out, "Title:    %s\n", course.Title)
		fmt.Fprintf(g.Out, "Category: %s\n", orDash(course.Category))
		fmt.Fprintf(g.Out, "Duration: %s\n", orDash(course.Duration))
		fmt.Fprintf(g.Out, "Status:   %s\n", orDash(string(course.Status)))
		fmt.Fprintf(g.Out, "Progress: %d%%\n", progressPercent(*course))
		fmt.Fprintf(g.Out, "Due:      %s\n", orDash(course.DueDate))
		return nil
	}

	fmt.Fprintf(g.Out, "ID:         %s\n", path.ID)
	fmt.Fprintf(g.Out, "Name:       %s\n", path.Name)
	fmt.Fprintf(g.Out, "Owner:      %s\n", orDash(path.Owner))
	fmt.Fprintf(g.Out, "Courses:    %d\n", path.Courses)
	fmt.Fprintf(g.Out, "Completion: %d%%\n", progressPercent(*path))
	fmt.Fprintf(g.Out, "Deadline:   %s\n", orDash(path.Deadline))
	return nil
}

// findRecord resolves query to exactly one course or learning path: an exact
// id wins, otherwise the query is used as a search term.
func findRecord(g *Globals, courses []catalog.Course, paths []catalog.LearningPath, query string) (*catalog.Course, *catalog.LearningPath, error) {
	for i := range courses {
		if strings.EqualFold(courses[i].ID, query) {
			return &courses[i], nil, nil
		}
	}
	for i := range paths {
		if strings.EqualFold(paths[i].ID, query) {
			return nil, &paths[i], nil
		}
	}

	q := listview.DefaultQuery()
	q.Term = query
	q.Sort = listview.SortTitleAsc
	coll := g.settings().Collation()
	matchedCourses := listview.DeriveWith(courses, q, coll)
	matchedPaths := listview.DeriveWith(paths, q, coll)

	switch n := len(matchedCourses) + len(matchedPaths); {
	case n == 0:
		return nil, nil, fmt.Errorf("no course or learning path found matching: %s", query)
	case n > 1:
		var labels []string
		for _, c := range matchedCourses {
			labels = append(labels, fmt.Sprintf("%s (%s)", c.Title, c.ID))
		}
		for _, p := range matchedPaths {
			labels = append(labels, fmt.Sprintf("%s (%s)", p.Name, p.ID))
		}
		return nil, nil, &AmbiguousMatchError{Query: query, Matches: labels}
	}

	if len(matchedCourses) == 1 {
		return &matchedCourses[0], nil, nil
	}
	return nil, &matchedPaths[0], nil
}
