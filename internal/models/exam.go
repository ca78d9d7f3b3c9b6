package models

// Exam is a single exam record as served by the exam data provider.
// Field names follow the provider's wire format (camelCase); records
// are immutable once fetched.
type Exam struct {
	ID         int    `json:"id"`
	CourseCode string `json:"courseCode"`
	Title      string `json:"title"`
	School     string `json:"school"`
	Date       string `json:"date"` // ISO format: "YYYY-MM-DD"
	Time       string `json:"time"` // 24h format: "HH:MM"
	Room       string `json:"room"`
}
