package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestRenderer(width int) *LipglossRenderer {
	return NewLipglossRenderer(&bytes.Buffer{}, width)
}

func TestProgressBar(t *testing.T) {
	r := newTestRenderer(80)

	tests := []struct {
		name string
		pct  int
		want string
	}{
		{"empty", 0, "░░░░░░░░░░   0%"},
		{"partial", 45, "████░░░░░░  45%"},
		{"full", 100, "██████████ 100%"},
		{"clamps above", 180, "██████████ 100%"},
		{"clamps below", -20, "░░░░░░░░░░   0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.progressBar(tt.pct, 10))
		})
	}
}

func TestRenderCourseTable(t *testing.T) {
	t.Run("empty view shows count and message", func(t *testing.T) {
		out := newTestRenderer(80).RenderCourseTable(CourseListView{})

		assert.Equal(t, "0 results\nNo courses found.\n", out)
	})

	t.Run("rows keep view order", func(t *testing.T) {
		view := CourseListView{Items: []CourseListItem{
			{ID: "2", Title: "Zeta", Status: "Completed", Progress: 100},
			{ID: "1", Title: "Alpha", Status: "Not Started"},
		}}

		out := newTestRenderer(80).RenderCourseTable(view)

		assert.True(t, strings.HasPrefix(out, "2 results\n"))
		assert.Less(t, strings.Index(out, "Zeta"), strings.Index(out, "Alpha"))
		assert.Contains(t, out, "│ Title ")
		assert.Contains(t, out, "│ Due ")
		assert.NotContains(t, out, "TITLE")
	})
}

func TestRenderCourseCards(t *testing.T) {
	view := CourseListView{Items: []CourseListItem{
		{ID: "1", Title: "Alpha", Category: "Ops", Duration: "1h", DueDate: "2025-01-01", Status: "In Progress", Progress: 50},
	}}

	out := newTestRenderer(80).RenderCourseCards(view)

	assert.True(t, strings.HasPrefix(out, "1 result\n"))
	assert.Contains(t, out, "Ops  ·  1h")
	assert.Contains(t, out, "Due 2025-01-01")
	assert.Contains(t, out, "In Progress")
}

func TestRenderPathGrid(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		out := newTestRenderer(80).RenderPathGrid(PathListView{})

		assert.Equal(t, "0 results\nNo learning paths found.\n", out)
	})

	t.Run("omits missing owner and deadline", func(t *testing.T) {
		view := PathListView{Items: []PathListItem{{ID: "LP", Name: "Onboarding", Courses: 3}}}

		out := newTestRenderer(80).RenderPathGrid(view)

		assert.Contains(t, out, "Courses: 3")
		assert.NotContains(t, out, "Owner:")
		assert.NotContains(t, out, "Deadline:")
	})
}

func TestGrid(t *testing.T) {
	block := strings.Repeat("x", 30)

	t.Run("fits two per row at 80 columns", func(t *testing.T) {
		out := newTestRenderer(80).grid([]string{block, block, block})

		assert.Len(t, strings.Split(out, "\n"), 2)
	})

	t.Run("narrow terminals get one per row", func(t *testing.T) {
		out := newTestRenderer(20).grid([]string{block, block})

		assert.Len(t, strings.Split(out, "\n"), 2)
	})

	t.Run("no blocks", func(t *testing.T) {
		assert.Empty(t, newTestRenderer(80).grid(nil))
	})
}
