package ui

import (
	"regexp"
	"strings"
	"testing"

	"lms/internal/listview"

	"github.com/stretchr/testify/assert"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func TestRenderSummary(t *testing.T) {
	t.Run("field renders collapsed with value", func(t *testing.T) {
		fields := []Field{{Label: "Search", Value: "java"}}
		output := stripANSI(renderSummary("Filter", fields))

		assert.Contains(t, output, "◇ Search · java")
	})

	t.Run("frame wraps the title", func(t *testing.T) {
		output := stripANSI(renderSummary("My Courses", []Field{{Label: "Sort", Value: "x"}}))

		assert.True(t, strings.HasPrefix(output, "┌ My Courses\n│\n"))
		assert.True(t, strings.HasSuffix(output, "└\n"))
	})

	t.Run("empty-value field produces no output line", func(t *testing.T) {
		fields := []Field{
			{Label: "Sort", Value: "x"},
			{Label: "Empty"},
		}
		output := stripANSI(renderSummary("Filter", fields))

		assert.NotContains(t, output, "Empty")
	})
}

func TestRenderQuery(t *testing.T) {
	t.Run("default query omits the search line", func(t *testing.T) {
		output := stripANSI(RenderQuery("My Courses", listview.DefaultQuery()))

		assert.NotContains(t, output, "Search")
		assert.Contains(t, output, "◇ Status · All Status")
		assert.Contains(t, output, "◇ Sort · Due Date ↑")
	})

	t.Run("shows term and named status", func(t *testing.T) {
		q := listview.QueryState{
			Term:   "java",
			Status: listview.FilterFor(listview.StatusInProgress),
			Sort:   listview.SortTitleAsc,
		}
		output := stripANSI(RenderQuery("My Courses", q))

		assert.Contains(t, output, "◇ Search · java")
		assert.Contains(t, output, "◇ Status · In Progress")
		assert.Contains(t, output, "◇ Sort · Title A–Z")
	})
}

func TestQueryForm(t *testing.T) {
	q := listview.DefaultQuery()

	assert.NotNil(t, QueryForm(&q, true))
	assert.NotNil(t, QueryForm(&q, false))
}
