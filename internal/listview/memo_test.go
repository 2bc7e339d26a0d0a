package listview_test

import (
	"testing"

	"lms/internal/catalog"
	"lms/internal/listview"

	"github.com/stretchr/testify/assert"
)

func TestMemo(t *testing.T) {
	t.Run("identical inputs return the cached slice", func(t *testing.T) {
		courses := exampleCourses()
		m := listview.NewMemo[catalog.Course](listview.Collation{})
		q := listview.DefaultQuery()

		first := m.Derive(courses, q)
		second := m.Derive(courses, q)

		assert.Same(t, &first.Items[0], &second.Items[0])
	})

	t.Run("query change recomputes", func(t *testing.T) {
		courses := exampleCourses()
		m := listview.NewMemo[catalog.Course](listview.Collation{})
		q := listview.DefaultQuery()

		_ = m.Derive(courses, q)
		q.Term = "java"
		got := m.Derive(courses, q)

		assert.Equal(t, 1, got.Count())
	})

	t.Run("different record slice recomputes", func(t *testing.T) {
		m := listview.NewMemo[catalog.Course](listview.Collation{})
		q := listview.DefaultQuery()

		_ = m.Derive(exampleCourses(), q)
		got := m.Derive(exampleCourses()[:2], q)

		assert.Equal(t, 2, got.Count())
	})

	t.Run("matches a fresh derivation", func(t *testing.T) {
		courses := exampleCourses()
		m := listview.NewMemo[catalog.Course](listview.Collation{})
		q := listview.QueryState{Term: "in", Status: listview.StatusAll, Sort: listview.SortTitleAsc}

		assert.Equal(t, listview.DeriveWith(courses, q, listview.Collation{}), m.Derive(courses, q).Items)
	})

	t.Run("reset drops the cache", func(t *testing.T) {
		courses := exampleCourses()
		m := listview.NewMemo[catalog.Course](listview.Collation{})
		q := listview.DefaultQuery()

		first := m.Derive(courses, q)
		m.Reset()
		second := m.Derive(courses, q)

		assert.NotSame(t, &first.Items[0], &second.Items[0])
		assert.Equal(t, first.Items, second.Items)
	})

	t.Run("empty input", func(t *testing.T) {
		m := listview.NewMemo[catalog.Course](listview.Collation{})

		assert.Equal(t, 0, m.Derive(nil, listview.DefaultQuery()).Count())
	})
}
