package catalog

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("catalog not found")
	ErrDuplicateID = errors.New("duplicate record id")
	ErrEmptyTitle  = errors.New("record title cannot be empty")
)

// Source supplies the unfiltered records behind the portal's views. Order is
// not significant; list views impose their own.
type Source interface {
	Courses(ctx context.Context) ([]Course, error)
	Paths(ctx context.Context) ([]LearningPath, error)
}

// StaticSource serves the built-in sample data.
type StaticSource struct{}

func (StaticSource) Courses(context.Context) ([]Course, error) {
	return SampleCourses(), nil
}

func (StaticSource) Paths(context.Context) ([]LearningPath, error) {
	return SamplePaths(), nil
}

// ValidateRecords checks the invariants every record set must hold: each id
// is unique and every record has a title.
func ValidateRecords(courses []Course, paths []LearningPath) error {
	seen := make(map[string]bool, len(courses)+len(paths))
	check := func(id, title string) error {
		if title == "" {
			return fmt.Errorf("%w: id %q", ErrEmptyTitle, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		seen[id] = true
		return nil
	}

	for _, c := range courses {
		if err := check(c.ID, c.Title); err != nil {
			return err
		}
	}
	for _, p := range paths {
		if err := check(p.ID, p.Name); err != nil {
			return err
		}
	}
	return nil
}

// FallbackSource serves Primary, switching to Fallback when Primary reports
// ErrNotFound.
type FallbackSource struct {
	Primary  Source
	Fallback Source
}

func (s FallbackSource) Courses(ctx context.Context) ([]Course, error) {
	courses, err := s.Primary.Courses(ctx)
	if errors.Is(err, ErrNotFound) {
		return s.Fallback.Courses(ctx)
	}
	return courses, err
}

func (s FallbackSource) Paths(ctx context.Context) ([]LearningPath, error) {
	paths, err := s.Primary.Paths(ctx)
	if errors.Is(err, ErrNotFound) {
		return s.Fallback.Paths(ctx)
	}
	return paths, err
}
