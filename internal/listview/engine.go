package listview

import (
	"errors"
	"slices"
	"strings"
)

// QueryState is the search term, status filter and sort key behind one view.
type QueryState struct {
	Term   string       `koanf:"term" yaml:"term"`
	Status StatusFilter `koanf:"status" yaml:"status"`
	Sort   SortKey      `koanf:"sort" yaml:"sort"`
}

func DefaultQuery() QueryState {
	return QueryState{Status: StatusAll, Sort: SortDueDateAsc}
}

func (q QueryState) Validate() error {
	var errs []error
	if !q.Status.Valid() {
		errs = append(errs, enumError(ErrInvalidStatusFilter, string(q.Status), nil))
	}
	if !q.Sort.Valid() {
		errs = append(errs, enumError(ErrInvalidSortKey, string(q.Sort), nil))
	}
	return errors.Join(errs...)
}

// normalized maps values that slipped past parsing onto the defaults.
func (q QueryState) normalized() QueryState {
	if !q.Status.Valid() {
		q.Status = StatusAll
	}
	if !q.Sort.Valid() {
		q.Sort = SortDueDateAsc
	}
	return q
}

type Result[R Record] struct {
	Items []R
}

func (r Result[R]) Count() int { return len(r.Items) }

type Option func(*options)

type options struct {
	collation Collation
	query     QueryState
}

func WithCollation(c Collation) Option {
	return func(o *options) { o.collation = c }
}

// WithQuery seeds the initial state; invalid enumeration values fall back to
// their defaults.
func WithQuery(q QueryState) Option {
	return func(o *options) { o.query = q.normalized() }
}

// Engine owns one view's QueryState and derives the visible records from it.
// Setters are not safe for concurrent use; Derive only reads the state.
type Engine[R Record] struct {
	query     QueryState
	collation Collation
}

func New[R Record](opts ...Option) *Engine[R] {
	o := options{query: DefaultQuery()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine[R]{query: o.query, collation: o.collation}
}

func (e *Engine[R]) SetSearchTerm(term string) {
	e.query.Term = term
}

func (e *Engine[R]) SetStatusFilter(f StatusFilter) {
	if !f.Valid() {
		f = StatusAll
	}
	e.query.Status = f
}

func (e *Engine[R]) SetSortKey(k SortKey) {
	if !k.Valid() {
		k = SortDueDateAsc
	}
	e.query.Sort = k
}

func (e *Engine[R]) Query() QueryState {
	return e.query
}

func (e *Engine[R]) Collation() Collation {
	return e.collation
}

func (e *Engine[R]) Derive(records []R) Result[R] {
	return Result[R]{Items: DeriveWith(records, e.query, e.collation)}
}

// DeriveWith filters records by q and returns them sorted in a new slice.
// records is never modified.
func DeriveWith[R Record](records []R, q QueryState, c Collation) []R {
	q = q.normalized()
	cmp := c.newComparer()
	term := cmp.folded(q.Term)

	out := make([]R, 0, len(records))
	for _, r := range records {
		if matchesTerm(cmp, r, term) && matchesStatus(r, q.Status) {
			out = append(out, r)
		}
	}

	sortRecords(cmp, out, q.Sort)
	return out
}

func matchesTerm[R Record](cmp *comparer, r R, foldedTerm string) bool {
	if foldedTerm == "" {
		return true
	}
	if strings.Contains(cmp.folded(r.RecordTitle()), foldedTerm) {
		return true
	}
	if cat, ok := categoryOf(r); ok && strings.Contains(cmp.folded(cat), foldedTerm) {
		return true
	}
	return false
}

func matchesStatus[R Record](r R, f StatusFilter) bool {
	if f == StatusAll {
		return true
	}
	s, ok := statusOf(r)
	return ok && FilterFor(s) == f
}

func sortRecords[R Record](cmp *comparer, records []R, by SortKey) {
	switch by {
	case SortDueDateDesc:
		slices.SortFunc(records, func(a, b R) int {
			return strings.Compare(dateOf(b), dateOf(a))
		})
	case SortTitleAsc:
		slices.SortFunc(records, func(a, b R) int {
			return cmp.compareTitles(a.RecordTitle(), b.RecordTitle())
		})
	default:
		slices.SortFunc(records, func(a, b R) int {
			return strings.Compare(dateOf(a), dateOf(b))
		})
	}
}
