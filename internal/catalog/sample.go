package catalog

import "lms/internal/listview"

var sampleCourses = []Course{
	{ID: "C001", Title: "Introduction to Data Privacy", Category: "Compliance", Duration: "2h 15m", Status: listview.StatusInProgress, Progress: 45, DueDate: "2025-09-15", Hero: "#8b5cf6"},
	{ID: "C002", Title: "Advanced Excel for Analysts", Category: "Productivity", Duration: "3h 40m", Status: listview.StatusNotStarted, Progress: 0, DueDate: "2025-09-30", Hero: "#0ea5e9"},
	{ID: "C003", Title: "Generative AI Fundamentals", Category: "Technology", Duration: "1h 50m", Status: listview.StatusCompleted, Progress: 100, DueDate: "2025-08-18", Hero: "#22c55e"},
	{ID: "C004", Title: "Secure Coding in Java", Category: "Technology", Duration: "2h 20m", Status: listview.StatusInProgress, Progress: 60, DueDate: "2025-09-08", Hero: "#06b6d4"},
	{ID: "C005", Title: "Inclusive Leadership", Category: "Leadership", Duration: "1h 35m", Status: listview.StatusNotStarted, Progress: 0, DueDate: "2025-10-05", Hero: "#f59e0b"},
}

var samplePaths = []LearningPath{
	{ID: "LP-101", Name: "New Manager Onboarding", Courses: 6, Completion: 66, Owner: "HR Academy", Deadline: "2025-10-10"},
	{ID: "LP-202", Name: "Data Analyst Growth Path", Courses: 9, Completion: 22, Owner: "Analytics CoE", Deadline: "2025-12-01"},
}

// SampleCourses returns a fresh copy of the built-in course list.
func SampleCourses() []Course {
	return append([]Course(nil), sampleCourses...)
}

func SamplePaths() []LearningPath {
	return append([]LearningPath(nil), samplePaths...)
}
