package catalog

import "lms/internal/listview"

type Course struct {
	ID       string          `yaml:"id"`
	Title    string          `yaml:"title"`
	Category string          `yaml:"category,omitempty"`
	Duration string          `yaml:"duration,omitempty"`
	Status   listview.Status `yaml:"status,omitempty"`
	Progress int             `yaml:"progress"`
	DueDate  string          `yaml:"due_date,omitempty"`
	Hero     string          `yaml:"hero,omitempty"`
}

func (c Course) RecordID() string    { return c.ID }
func (c Course) RecordTitle() string { return c.Title }

func (c Course) RecordCategory() (string, bool) {
	return c.Category, c.Category != ""
}

func (c Course) RecordStatus() (listview.Status, bool) {
	return c.Status, c.Status != ""
}

func (c Course) RecordDate() (string, bool) {
	return c.DueDate, c.DueDate != ""
}

func (c Course) RecordProgress() (int, bool) {
	return c.Progress, true
}

type LearningPath struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Courses    int    `yaml:"courses"`
	Completion int    `yaml:"completion"`
	Owner      string `yaml:"owner,omitempty"`
	Deadline   string `yaml:"deadline,omitempty"`
}

func (p LearningPath) RecordID() string    { return p.ID }
func (p LearningPath) RecordTitle() string { return p.Name }

// RecordCategory exposes the owning team so path search matches on it.
func (p LearningPath) RecordCategory() (string, bool) {
	return p.Owner, p.Owner != ""
}

func (p LearningPath) RecordDate() (string, bool) {
	return p.Deadline, p.Deadline != ""
}

func (p LearningPath) RecordProgress() (int, bool) {
	return p.Completion, true
}

// ClampPercent bounds a stored percentage for display. Stored values are not
// validated; out-of-range data is shown at the nearest bound.
func ClampPercent(v int) int {
	return min(100, max(0, v))
}
