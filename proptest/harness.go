package proptest

import (
	"os"
	"path/filepath"
	"testing"

	"lms/internal/catalog"
	"lms/internal/listview"

	"pgregory.net/rapid"
)

const (
	minCourses        = 0
	maxCourses        = 20
	typicalMinCourses = 1
	typicalMaxCourses = 10
)

type Harness struct {
	T   *rapid.T
	Dir string
}

// ViewHarness carries one drawn record set and collation per iteration.
type ViewHarness struct {
	Harness
	Courses   []catalog.Course
	Collation listview.Collation
}

func (h *ViewHarness) DrawQuery() listview.QueryState {
	return queryStateGen().Draw(h.T, "query")
}

func (h *ViewHarness) Derive(q listview.QueryState) []catalog.Course {
	return listview.DeriveWith(h.Courses, q, h.Collation)
}

func RunWithCourses(t *testing.T, minCount, maxCount int, fn func(h *ViewHarness)) {
	rapid.Check(t, func(rt *rapid.T) {
		harness := &ViewHarness{
			Harness:   Harness{T: rt},
			Courses:   coursesGen(minCount, maxCount).Draw(rt, "courses"),
			Collation: listview.Collation{Locale: localeGen.Draw(rt, "locale")},
		}
		fn(harness)
	})
}

func RunBasic(t *testing.T, fn func(h *Harness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
		if err := os.MkdirAll(iterDir, 0o755); err != nil {
			rt.Fatalf("failed to create iter dir: %v", err)
		}

		harness := &Harness{
			T:   rt,
			Dir: iterDir,
		}

		fn(harness)
	})
}
