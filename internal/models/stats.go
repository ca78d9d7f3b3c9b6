package models

// DashboardStats is derived from the exam and session collections on
// every request; it is never persisted.
type DashboardStats struct {
	UpcomingExams          int     `json:"upcoming_exams"`
	CompletedStudySessions int     `json:"completed_study_sessions"`
	PlannedStudySessions   int     `json:"planned_study_sessions"`
	TotalStudyHours        float64 `json:"total_study_hours"`
}
