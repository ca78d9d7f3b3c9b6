package study

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"nuhub-backend/internal/models"
)

// Session placement anchors: the first session of a day starts at
// 13:00 and each further session that day starts 30 minutes later.
const (
	anchorMinute   = 13 * 60
	staggerMinutes = 30
	minutesPerHour = 60
)

// GenerateSessions allocates totalHours into dated study sessions,
// walking forward one day at a time from startDate and placing up to
// sessionsPerDay sessions of at most hoursPerSession each. Sessions
// are never scheduled on or after the exam day.
//
// When the days before the exam cannot absorb the full budget the
// remainder is silently dropped and fewer sessions are returned; this
// shortfall is a documented policy of the planner, not an error.
func GenerateSessions(exam models.Exam, totalHours float64, startDate time.Time, sessionsPerDay int, hoursPerSession float64) ([]models.StudySession, error) {
	examDate, err := time.Parse(dateLayout, exam.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid exam date %q: %w", exam.Date, err)
	}

	current := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)
	remaining := totalHours

	var sessions []models.StudySession
	for remaining > 0 && current.Before(examDate) {
		for i := 0; i < sessionsPerDay && remaining > 0; i++ {
			hours := math.Min(hoursPerSession, remaining)

			startMin := anchorMinute + i*staggerMinutes
			endMin := startMin + int(hours)*minutesPerHour + int(math.Round((hours-math.Trunc(hours))*minutesPerHour))

			sessions = append(sessions, models.StudySession{
				ID:         uuid.NewString(),
				ExamID:     exam.ID,
				CourseCode: exam.CourseCode,
				Title:      exam.Title,
				Date:       current.Format(dateLayout),
				StartTime:  formatClock(startMin),
				EndTime:    formatClock(endMin),
				Completed:  false,
			})

			remaining -= hours
		}
		current = current.AddDate(0, 0, 1)
	}

	return sessions, nil
}
