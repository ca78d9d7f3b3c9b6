package examsource

import (
	"context"

	"nuhub-backend/internal/models"
)

// Fixed serves a static exam list. It backs the fallback path and
// tests; the records are illustrative sample data.
type Fixed struct {
	exams []models.Exam
}

func NewFixed(exams []models.Exam) *Fixed {
	return &Fixed{exams: exams}
}

func (f *Fixed) All(_ context.Context) ([]models.Exam, error) {
	out := make([]models.Exam, len(f.exams))
	copy(out, f.exams)
	return out, nil
}

// SampleExams is the mock dataset substituted when the provider is
// unavailable.
func SampleExams() []models.Exam {
	return []models.Exam{
		{ID: 1, CourseCode: "CSCI151", Title: "Programming for Scientists and Engineers", School: "School of Engineering and Digital Sciences (SEDS)", Date: "2025-12-09", Time: "09:00", Room: "7.201"},
		{ID: 2, CourseCode: "MATH161", Title: "Calculus I", School: "School of Sciences and Humanities (SSH)", Date: "2025-12-10", Time: "12:00", Room: "3.110"},
		{ID: 3, CourseCode: "PHYS161", Title: "Physics I for Scientists and Engineers", School: "School of Sciences and Humanities (SSH)", Date: "2025-12-11", Time: "15:00", Room: "2.305"},
		{ID: 4, CourseCode: "CHME201", Title: "Material and Energy Balances", School: "School of Engineering and Digital Sciences (SEDS)", Date: "2025-12-13", Time: "09:00", Room: "6.119"},
		{ID: 5, CourseCode: "ECON101", Title: "Principles of Microeconomics", School: "Graduate School of Business (GSB)", Date: "2025-12-15", Time: "12:00", Room: "5.117"},
	}
}
