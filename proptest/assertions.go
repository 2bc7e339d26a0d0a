package proptest

import (
	"lms/internal/catalog"
	"lms/internal/listview"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"pgregory.net/rapid"
)

var byID = cmpopts.SortSlices(func(a, b catalog.Course) bool { return a.ID < b.ID })

func assertCoursesEqual(t *rapid.T, expected, actual []catalog.Course) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, byID, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("course mismatch (-want +got):\n%s", diff)
	}
}

func assertSameIDs(t *rapid.T, expected, actual []catalog.Course) {
	t.Helper()
	if diff := cmp.Diff(courseIDs(expected), courseIDs(actual), cmpopts.SortSlices(func(a, b string) bool { return a < b }), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("id mismatch (-want +got):\n%s", diff)
	}
}

func assertSubset(t *rapid.T, subset, superset []catalog.Course) {
	t.Helper()
	superIDs := make(map[string]bool)
	for _, c := range superset {
		superIDs[c.ID] = true
	}
	for _, c := range subset {
		if !superIDs[c.ID] {
			t.Fatalf("[%s] violated: ID %s not in superset", InvResultSubset, c.ID)
		}
	}
}

func assertSortedBy(t *rapid.T, courses []catalog.Course, key listview.SortKey, c listview.Collation) {
	t.Helper()
	for i := 0; i < len(courses)-1; i++ {
		a, b := courses[i], courses[i+1]
		var inOrder bool
		switch key {
		case listview.SortDueDateDesc:
			inOrder = a.DueDate >= b.DueDate
		case listview.SortTitleAsc:
			inOrder = c.CompareTitles(a.Title, b.Title) <= 0
		default:
			inOrder = a.DueDate <= b.DueDate
		}
		if !inOrder {
			t.Fatalf("[%s] violated: %s order broken at positions %d, %d: %+v then %+v", InvSortOrder, key, i, i+1, a, b)
		}
	}
}

func courseIDs(courses []catalog.Course) []string {
	out := make([]string, len(courses))
	for i, c := range courses {
		out[i] = c.ID
	}
	return out
}
