package render

type Renderer interface {
	RenderCourseTable(view CourseListView) string
	RenderCourseCards(view CourseListView) string
	RenderPathGrid(view PathListView) string
	RenderDashboard(view DashboardView) string
}

type CourseListView struct {
	Items []CourseListItem
}

type CourseListItem struct {
	ID       string
	Title    string
	Category string
	Duration string
	Status   string
	Progress int
	DueDate  string
}

func (v CourseListView) IsEmpty() bool {
	return len(v.Items) == 0
}

// Count is the result count shown above a list.
func (v CourseListView) Count() int {
	return len(v.Items)
}

type PathListView struct {
	Items []PathListItem
}

type PathListItem struct {
	ID         string
	Name       string
	Owner      string
	Courses    int
	Completion int
	Deadline   string
}

func (v PathListView) IsEmpty() bool {
	return len(v.Items) == 0
}

func (v PathListView) Count() int {
	return len(v.Items)
}

type StatCard struct {
	Title string
	Value string
	Sub   string
}

type DashboardView struct {
	Stats    []StatCard
	Continue CourseListView
}
