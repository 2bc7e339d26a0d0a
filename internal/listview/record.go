package listview

// Record is the minimum a list item must expose to be searched and sorted.
type Record interface {
	RecordID() string
	RecordTitle() string
}

// Categorized records are also matched by the search term on their category.
type Categorized interface {
	RecordCategory() (string, bool)
}

// Statused records take part in status filtering. Records that do not
// implement it only pass the "all" filter.
type Statused interface {
	RecordStatus() (Status, bool)
}

// Dated records carry an ISO-8601 date used by the due date sorts.
type Dated interface {
	RecordDate() (string, bool)
}

// Progressed records carry a completion percentage. The engine ignores it;
// renderers read it.
type Progressed interface {
	RecordProgress() (int, bool)
}

func categoryOf(r Record) (string, bool) {
	if c, ok := r.(Categorized); ok {
		return c.RecordCategory()
	}
	return "", false
}

func statusOf(r Record) (Status, bool) {
	if s, ok := r.(Statused); ok {
		return s.RecordStatus()
	}
	return "", false
}

func dateOf(r Record) string {
	if d, ok := r.(Dated); ok {
		if v, ok := d.RecordDate(); ok {
			return v
		}
	}
	return ""
}

// ProgressOf returns the record's completion percentage, if it has one.
func ProgressOf(r Record) (int, bool) {
	if p, ok := r.(Progressed); ok {
		return p.RecordProgress()
	}
	return 0, false
}
