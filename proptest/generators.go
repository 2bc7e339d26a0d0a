package proptest

import (
	"fmt"

	"lms/internal/catalog"
	"lms/internal/listview"

	"golang.org/x/text/language"
	"pgregory.net/rapid"
)

var (
	iterDirGen    = rapid.StringMatching(`[a-z]{8}`)
	shortQueryGen = rapid.StringMatching(`[a-zé]{1,4}`)
	titleGen      = rapid.StringMatching(`[A-Za-zÀ-ÿ][A-Za-zÀ-ÿ ]{0,24}`)
	categoryGen   = rapid.SampledFrom([]string{"", "Compliance", "Technology", "Leadership", "Productivity", "Éthique"})
	localeGen     = rapid.SampledFrom([]language.Tag{language.English, language.Swedish, language.German, language.French})
)

func statusGen() *rapid.Generator[listview.Status] {
	return rapid.SampledFrom(append([]listview.Status{""}, listview.Statuses()...))
}

func dueDateGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		if rapid.IntRange(0, 9).Draw(t, "undated") == 0 {
			return ""
		}
		return fmt.Sprintf("2025-%02d-%02d",
			rapid.IntRange(1, 12).Draw(t, "month"),
			rapid.IntRange(1, 28).Draw(t, "day"))
	})
}

// courseGen draws a course with the given id; every other field is random,
// including empty category, status and due date.
func courseGen(id string) *rapid.Generator[catalog.Course] {
	return rapid.Custom(func(t *rapid.T) catalog.Course {
		return catalog.Course{
			ID:       id,
			Title:    titleGen.Draw(t, "title"),
			Category: categoryGen.Draw(t, "category"),
			Status:   statusGen().Draw(t, "status"),
			Progress: rapid.IntRange(-10, 110).Draw(t, "progress"),
			DueDate:  dueDateGen().Draw(t, "dueDate"),
		}
	})
}

func coursesGen(minCount, maxCount int) *rapid.Generator[[]catalog.Course] {
	return rapid.Custom(func(t *rapid.T) []catalog.Course {
		n := rapid.IntRange(minCount, maxCount).Draw(t, "numCourses")
		out := make([]catalog.Course, n)
		for i := range out {
			out[i] = courseGen(fmt.Sprintf("C%03d", i)).Draw(t, "course")
		}
		return out
	})
}

func queryStateGen() *rapid.Generator[listview.QueryState] {
	return rapid.Custom(func(t *rapid.T) listview.QueryState {
		var term string
		if rapid.Bool().Draw(t, "hasTerm") {
			term = shortQueryGen.Draw(t, "term")
		}
		return listview.QueryState{
			Term:   term,
			Status: rapid.SampledFrom(listview.StatusFilters()).Draw(t, "status"),
			Sort:   rapid.SampledFrom(listview.SortKeys()).Draw(t, "sort"),
		}
	})
}

// anyStatusFilterGen mixes valid filters with values the engine must reject.
func anyStatusFilterGen() *rapid.Generator[listview.StatusFilter] {
	return rapid.OneOf(
		rapid.SampledFrom(listview.StatusFilters()),
		rapid.Map(rapid.StringMatching(`[a-z ]{0,12}`), func(s string) listview.StatusFilter {
			return listview.StatusFilter(s)
		}),
	)
}

func anySortKeyGen() *rapid.Generator[listview.SortKey] {
	return rapid.OneOf(
		rapid.SampledFrom(listview.SortKeys()),
		rapid.Map(rapid.StringMatching(`[a-zA-Z]{0,12}`), func(s string) listview.SortKey {
			return listview.SortKey(s)
		}),
	)
}

func malformedYAMLGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{{{{"),
		rapid.Just("}}}}"),
		rapid.Just("- - - -"),
		rapid.Just(":::"),
		rapid.Just("[\n["),
		rapid.Just("key: [unclosed"),
		rapid.Just("key: {unclosed"),
		rapid.Just("- item\n  bad indent"),
		rapid.Just("\t\ttabs: everywhere"),
		rapid.Just("version: \"unmatched quote"),
		rapid.Just("courses:\n  - id: missing\n  title: value"),
		rapid.StringMatching(`[^a-zA-Z0-9\s]{10,50}`),
		rapid.Custom(func(t *rapid.T) string {
			size := rapid.IntRange(10, 100).Draw(t, "size")
			bytes := make([]byte, size)
			for i := range bytes {
				bytes[i] = byte(rapid.IntRange(0, 255).Draw(t, "byte"))
			}
			return string(bytes)
		}),
	)
}

func invalidTypesGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(`version: "not_a_number"
courses: []
`),
		rapid.Just(`version: 1
courses:
  - id: C001
    title: [not, a, string]
`),
		rapid.Just(`version: 1
courses:
  - id: C001
    title: Valid
    progress: "forty"
`),
		rapid.Just(`version: 1
paths:
  - id: LP-1
    name: Path
    courses: many
`),
	)
}
