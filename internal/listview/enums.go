package listview

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

var (
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidStatusFilter = errors.New("invalid status filter")
	ErrInvalidSortKey      = errors.New("invalid sort key")
)

type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

var statuses = []Status{StatusNotStarted, StatusInProgress, StatusCompleted}

// Statuses returns every status in display order.
func Statuses() []Status {
	return append([]Status(nil), statuses...)
}

func (s Status) Valid() bool {
	for _, v := range statuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s Status) String() string { return string(s) }

type StatusFilter string

const StatusAll StatusFilter = "all"

// FilterFor returns the filter that keeps only records with status s.
func FilterFor(s Status) StatusFilter { return StatusFilter(s) }

// StatusFilters returns "all" followed by one filter per status.
func StatusFilters() []StatusFilter {
	out := []StatusFilter{StatusAll}
	for _, s := range statuses {
		out = append(out, FilterFor(s))
	}
	return out
}

func (f StatusFilter) Valid() bool {
	return f == StatusAll || Status(f).Valid()
}

func (f StatusFilter) String() string { return string(f) }

type SortKey string

const (
	SortDueDateAsc  SortKey = "dueDateAsc"
	SortDueDateDesc SortKey = "dueDateDesc"
	SortTitleAsc    SortKey = "titleAsc"
)

var sortKeys = []SortKey{SortDueDateAsc, SortDueDateDesc, SortTitleAsc}

func SortKeys() []SortKey {
	return append([]SortKey(nil), sortKeys...)
}

func (k SortKey) Valid() bool {
	for _, v := range sortKeys {
		if k == v {
			return true
		}
	}
	return false
}

func (k SortKey) String() string { return string(k) }

// Label is the short form shown next to a sort selector.
func (k SortKey) Label() string {
	switch k {
	case SortDueDateDesc:
		return "Due Date ↓"
	case SortTitleAsc:
		return "Title A–Z"
	default:
		return "Due Date ↑"
	}
}

// EnumError reports a value outside one of the query enumerations.
type EnumError struct {
	Kind       error
	Value      string
	Suggestion string
}

func (e *EnumError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v %q (did you mean %q?)", e.Kind, e.Value, e.Suggestion)
	}
	return fmt.Sprintf("%v %q", e.Kind, e.Value)
}

func (e *EnumError) Unwrap() error { return e.Kind }

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

func ParseStatus(s string) (Status, error) {
	n := normalize(s)
	for _, v := range statuses {
		if n == normalize(string(v)) {
			return v, nil
		}
	}
	return "", enumError(ErrInvalidStatus, s, statusNames())
}

func ParseStatusFilter(s string) (StatusFilter, error) {
	n := normalize(s)
	if n == "" || n == string(StatusAll) {
		return StatusAll, nil
	}
	for _, v := range statuses {
		if n == normalize(string(v)) {
			return FilterFor(v), nil
		}
	}
	return "", enumError(ErrInvalidStatusFilter, s, append([]string{string(StatusAll)}, statusNames()...))
}

var sortAliases = map[string]SortKey{
	"due":               SortDueDateAsc,
	"dueasc":            SortDueDateAsc,
	"duedesc":           SortDueDateDesc,
	"title":             SortTitleAsc,
	"duedateascending":  SortDueDateAsc,
	"duedatedescending": SortDueDateDesc,
	"titleascending":    SortTitleAsc,
}

func ParseSortKey(s string) (SortKey, error) {
	n := normalize(s)
	if n == "" {
		return SortDueDateAsc, nil
	}
	for _, v := range sortKeys {
		if n == normalize(string(v)) {
			return v, nil
		}
	}
	if k, ok := sortAliases[n]; ok {
		return k, nil
	}
	names := make([]string, 0, len(sortKeys))
	for _, v := range sortKeys {
		names = append(names, string(v))
	}
	return "", enumError(ErrInvalidSortKey, s, names)
}

func statusNames() []string {
	names := make([]string, 0, len(statuses))
	for _, v := range statuses {
		names = append(names, string(v))
	}
	return names
}

func enumError(kind error, value string, candidates []string) *EnumError {
	return &EnumError{Kind: kind, Value: value, Suggestion: closest(value, candidates)}
}

// closest returns the candidate nearest to value, or "" when nothing is
// close enough to be a plausible typo.
func closest(value string, candidates []string) string {
	n := normalize(value)
	if n == "" {
		return ""
	}
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(n, normalize(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist > max(2, len(n)/3) {
		return ""
	}
	return best
}
