package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"lms/internal/listview"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const catalogVersion = 1

type catalogFile struct {
	Version int            `yaml:"version"`
	Courses []Course       `yaml:"courses"`
	Paths   []LearningPath `yaml:"paths"`
}

// YAMLSource reads courses and learning paths from a versioned catalog file.
type YAMLSource struct {
	path string
	log  *slog.Logger

	mu      sync.RWMutex
	loaded  bool
	courses []Course
	paths   []LearningPath
}

func NewYAMLSource(path string, log *slog.Logger) *YAMLSource {
	if log == nil {
		log = slog.Default()
	}
	return &YAMLSource{path: path, log: log}
}

func (s *YAMLSource) Path() string { return s.path }

func (s *YAMLSource) Courses(ctx context.Context) ([]Course, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Course(nil), s.courses...), nil
}

func (s *YAMLSource) Paths(ctx context.Context) ([]LearningPath, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]LearningPath(nil), s.paths...), nil
}

func (s *YAMLSource) ensureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}
	return s.Load(ctx)
}

// Load reads the catalog file. A missing file is reported as ErrNotFound.
func (s *YAMLSource) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, s.path)
	}
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse catalog file %q: %w", s.path, err)
	}
	if file.Version != 0 && file.Version != catalogVersion {
		return fmt.Errorf("unsupported catalog version %d in %q", file.Version, s.path)
	}

	courses, err := s.normalizeCourses(file.Courses)
	if err != nil {
		return fmt.Errorf("invalid catalog file %q: %w", s.path, err)
	}
	paths := s.normalizePaths(file.Paths)
	if err := ValidateRecords(courses, paths); err != nil {
		return fmt.Errorf("invalid catalog file %q: %w", s.path, err)
	}

	s.courses, s.paths, s.loaded = courses, paths, true
	s.log.Debug("catalog loaded", "path", s.path, "courses", len(courses), "paths", len(paths))
	return nil
}

func (s *YAMLSource) normalizeCourses(in []Course) ([]Course, error) {
	out := make([]Course, 0, len(in))
	for _, c := range in {
		if c.ID == "" {
			c.ID = uuid.New().String()
			s.log.Debug("assigned course id", "title", c.Title, "id", c.ID)
		}
		if c.Status != "" {
			st, err := listview.ParseStatus(string(c.Status))
			if err != nil {
				return nil, fmt.Errorf("course %q: %w", c.ID, err)
			}
			c.Status = st
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *YAMLSource) normalizePaths(in []LearningPath) []LearningPath {
	out := make([]LearningPath, 0, len(in))
	for _, p := range in {
		if p.ID == "" {
			p.ID = uuid.New().String()
			s.log.Debug("assigned path id", "name", p.Name, "id", p.ID)
		}
		out = append(out, p)
	}
	return out
}

// WriteCatalog stores courses and paths at path, replacing any existing file
// atomically.
func WriteCatalog(path string, courses []Course, paths []LearningPath) error {
	if err := ValidateRecords(courses, paths); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	file := catalogFile{
		Version: catalogVersion,
		Courses: append([]Course(nil), courses...),
		Paths:   append([]LearningPath(nil), paths...),
	}
	sort.SliceStable(file.Courses, func(i, j int) bool {
		return file.Courses[i].ID < file.Courses[j].ID
	})
	sort.SliceStable(file.Paths, func(i, j int) bool {
		return file.Paths[i].ID < file.Paths[j].ID
	})

	data, err := yaml.Marshal(file)
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
