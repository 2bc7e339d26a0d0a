package proptest

import (
	"strings"
	"testing"

	"lms/internal/listview"

	"pgregory.net/rapid"
)

func TestProperty_EmptySearch_ReturnsAll(t *testing.T) {
	RunWithCourses(t, minCourses, maxCourses, func(h *ViewHarness) {
		q := h.DrawQuery()
		withTerm := q
		q.Term = ""

		all := h.Derive(q)
		narrowed := h.Derive(withTerm)

		assertSubset(h.T, narrowed, all)
	})
}

func TestProperty_Search_CaseInsensitive(t *testing.T) {
	RunWithCourses(t, typicalMinCourses, typicalMaxCourses, func(h *ViewHarness) {
		term := shortQueryGen.Draw(h.T, "term")
		q := listview.QueryState{Term: term, Status: listview.StatusAll, Sort: listview.SortDueDateAsc}
		upper := q
		upper.Term = strings.ToUpper(term)

		assertSameIDs(h.T, h.Derive(q), h.Derive(upper))
	})
}

func TestProperty_Search_TitleFragmentFindsRecord(t *testing.T) {
	RunWithCourses(t, typicalMinCourses, typicalMaxCourses, func(h *ViewHarness) {
		target := rapid.SampledFrom(h.Courses).Draw(h.T, "target")
		runes := []rune(target.Title)
		start := rapid.IntRange(0, len(runes)-1).Draw(h.T, "start")
		end := rapid.IntRange(start+1, len(runes)).Draw(h.T, "end")
		fragment := string(runes[start:end])

		got := h.Derive(listview.QueryState{Term: fragment, Status: listview.StatusAll, Sort: listview.SortTitleAsc})

		for _, c := range got {
			if c.ID == target.ID {
				return
			}
		}
		h.T.Fatalf("[%s] violated: %q not found by fragment %q", InvFilterComplete, target.Title, fragment)
	})
}

func TestProperty_Search_UnrelatedRecordsNoEffect(t *testing.T) {
	RunWithCourses(t, typicalMinCourses, typicalMaxCourses, func(h *ViewHarness) {
		q := h.DrawQuery()
		q.Term = "zq"
		before := h.Derive(q)

		// Digits never match a letters-only term.
		extra := courseGen("X999").Draw(h.T, "extra")
		extra.Title = "1234"
		extra.Category = ""
		h.Courses = append(h.Courses, extra)

		assertSameIDs(h.T, before, h.Derive(q))
	})
}
