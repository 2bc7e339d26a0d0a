package listview_test

import (
	"testing"

	"lms/internal/listview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	cases := map[string]listview.Status{
		"Not Started": listview.StatusNotStarted,
		"not-started": listview.StatusNotStarted,
		"InProgress":  listview.StatusInProgress,
		"in_progress": listview.StatusInProgress,
		" completed ": listview.StatusCompleted,
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			got, err := listview.ParseStatus(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := listview.ParseStatus("archived")
		assert.ErrorIs(t, err, listview.ErrInvalidStatus)
	})
}

func TestParseStatusFilter(t *testing.T) {
	t.Run("empty and all mean all", func(t *testing.T) {
		for _, in := range []string{"", "all", "ALL"} {
			got, err := listview.ParseStatusFilter(in)
			require.NoError(t, err)
			assert.Equal(t, listview.StatusAll, got)
		}
	})

	t.Run("status names map to their filter", func(t *testing.T) {
		got, err := listview.ParseStatusFilter("in-progress")
		require.NoError(t, err)
		assert.Equal(t, listview.FilterFor(listview.StatusInProgress), got)
	})

	t.Run("typo gets a suggestion", func(t *testing.T) {
		_, err := listview.ParseStatusFilter("complted")

		var enumErr *listview.EnumError
		require.ErrorAs(t, err, &enumErr)
		assert.ErrorIs(t, err, listview.ErrInvalidStatusFilter)
		assert.Equal(t, "Completed", enumErr.Suggestion)
		assert.Contains(t, err.Error(), `did you mean "Completed"?`)
	})

	t.Run("nonsense gets no suggestion", func(t *testing.T) {
		_, err := listview.ParseStatusFilter("qqqqqqqqqqqqqqqqqqqq")

		var enumErr *listview.EnumError
		require.ErrorAs(t, err, &enumErr)
		assert.Empty(t, enumErr.Suggestion)
	})
}

func TestParseSortKey(t *testing.T) {
	cases := map[string]listview.SortKey{
		"":                  listview.SortDueDateAsc,
		"dueDateAsc":        listview.SortDueDateAsc,
		"duedatedesc":       listview.SortDueDateDesc,
		"due-desc":          listview.SortDueDateDesc,
		"title":             listview.SortTitleAsc,
		"TitleAsc":          listview.SortTitleAsc,
		"dueDateAscending":  listview.SortDueDateAsc,
		"dueDateDescending": listview.SortDueDateDesc,
		"titleAscending":    listview.SortTitleAsc,
	}
	for in, want := range cases {
		t.Run("parses "+in, func(t *testing.T) {
			got, err := listview.ParseSortKey(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	t.Run("typo gets a suggestion", func(t *testing.T) {
		_, err := listview.ParseSortKey("titelAsc")

		var enumErr *listview.EnumError
		require.ErrorAs(t, err, &enumErr)
		assert.ErrorIs(t, err, listview.ErrInvalidSortKey)
		assert.Equal(t, "titleAsc", enumErr.Suggestion)
	})
}

func TestStatusFilters(t *testing.T) {
	filters := listview.StatusFilters()

	require.Len(t, filters, 4)
	assert.Equal(t, listview.StatusAll, filters[0])
	for _, f := range filters {
		assert.True(t, f.Valid())
	}
}

func TestSortKey_Label(t *testing.T) {
	assert.Equal(t, "Due Date ↑", listview.SortDueDateAsc.Label())
	assert.Equal(t, "Due Date ↓", listview.SortDueDateDesc.Label())
	assert.Equal(t, "Title A–Z", listview.SortTitleAsc.Label())
}

func TestParseLocale(t *testing.T) {
	c, err := listview.ParseLocale("")
	require.NoError(t, err)
	assert.Equal(t, listview.DefaultLocale, c.Locale)

	_, err = listview.ParseLocale("not a locale!")
	assert.Error(t, err)
}
