package proptest

import (
	"strings"

	"lms/internal/catalog"
	"lms/internal/listview"

	"golang.org/x/text/cases"
	"pgregory.net/rapid"
)

const (
	InvResultSubset      = "result-subset"
	InvNoDuplicates      = "no-duplicates"
	InvTermMatches       = "term-matches"
	InvStatusMatches     = "status-matches"
	InvFilterComplete    = "filter-complete"
	InvSortOrder         = "sort-order"
	InvCountConsistent   = "count-consistent"
	InvInputUnchanged    = "input-unchanged"
	InvDeriveIdempotent  = "derive-idempotent"
	InvMemoConsistent    = "memo-consistent"
	InvQueryModel        = "query-model"
	InvSaveLoadRoundTrip = "save-load-round-trip"
)

// matches is an independent statement of the filter predicate.
func matches(c catalog.Course, q listview.QueryState) bool {
	if q.Status != listview.StatusAll && (c.Status == "" || listview.FilterFor(c.Status) != q.Status) {
		return false
	}
	if q.Term == "" {
		return true
	}
	fold := cases.Fold()
	term := fold.String(q.Term)
	if strings.Contains(fold.String(c.Title), term) {
		return true
	}
	return c.Category != "" && strings.Contains(fold.String(c.Category), term)
}

// verifyDerivation checks every property a derived list must hold against
// the records and query it came from.
func verifyDerivation(t *rapid.T, records []catalog.Course, q listview.QueryState, c listview.Collation, got []catalog.Course) {
	t.Helper()

	if len(got) > len(records) {
		t.Fatalf("[%s] violated: %d results from %d records", InvCountConsistent, len(got), len(records))
	}
	assertSubset(t, got, records)

	seen := make(map[string]bool, len(got))
	for _, r := range got {
		if seen[r.ID] {
			t.Fatalf("[%s] violated: %s appears twice", InvNoDuplicates, r.ID)
		}
		seen[r.ID] = true

		if !matches(r, q) {
			t.Fatalf("[%s/%s] violated: %+v does not satisfy %+v", InvTermMatches, InvStatusMatches, r, q)
		}
	}

	for _, r := range records {
		if matches(r, q) && !seen[r.ID] {
			t.Fatalf("[%s] violated: %+v matches %+v but was dropped", InvFilterComplete, r, q)
		}
	}

	assertSortedBy(t, got, q.Sort, c)
}
