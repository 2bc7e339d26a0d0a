package listview

import "sync"

// Memo caches the most recent derivation keyed on the identity of the input
// slice and the query. Use it where Derive is called per keystroke.
type Memo[R Record] struct {
	mu        sync.Mutex
	collation Collation

	valid bool
	base  *R
	n     int
	query QueryState
	items []R
}

func NewMemo[R Record](c Collation) *Memo[R] {
	return &Memo[R]{collation: c}
}

// Derive returns the cached result when records (same backing array and
// length) and q are unchanged since the previous call.
func (m *Memo[R]) Derive(records []R, q QueryState) Result[R] {
	var base *R
	if len(records) > 0 {
		base = &records[0]
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.valid && m.base == base && m.n == len(records) && m.query == q {
		return Result[R]{Items: m.items}
	}

	m.items = DeriveWith(records, q, m.collation)
	m.base, m.n, m.query, m.valid = base, len(records), q, true
	return Result[R]{Items: m.items}
}

// Reset drops the cached result, e.g. after records were edited in place.
func (m *Memo[R]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.valid = false
	m.items = nil
}
