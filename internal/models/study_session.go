package models

// StudySession is one scheduled block of study time tied to an exam.
// Course code and title are copied from the exam at generation time
// and are not kept in sync afterwards.
type StudySession struct {
	ID         string `json:"id"`
	ExamID     int    `json:"examId"`
	CourseCode string `json:"courseCode"`
	Title      string `json:"title"`
	Date       string `json:"date"`      // "YYYY-MM-DD"
	StartTime  string `json:"startTime"` // "HH:MM"
	EndTime    string `json:"endTime"`   // "HH:MM", same day
	Completed  bool   `json:"completed"`
}

type CreatePlanRequest struct {
	ExamID          int     `json:"exam_id" validate:"required"`
	StartDate       string  `json:"start_date" validate:"required"`
	TotalHours      float64 `json:"total_hours" validate:"omitempty,gt=0"`
	SessionsPerDay  int     `json:"sessions_per_day" validate:"omitempty,min=1,max=8"`
	HoursPerSession float64 `json:"hours_per_session" validate:"omitempty,gt=0,lte=8"`
}
