package study

import (
	"math"
	"sort"
	"strings"
	"time"

	"nuhub-backend/internal/models"
)

// Derived views over the exam and session collections. Every function
// here is stateless and recomputed per call; empty input yields empty
// output, never an error.

// examMidnight parses an exam's calendar date at 00:00. Unparseable
// dates come back zero, which no filter treats as upcoming.
func examMidnight(e models.Exam) time.Time {
	t, err := time.Parse(dateLayout, e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// UpcomingExams returns exams whose date is strictly after now,
// sorted by date then time of day.
func UpcomingExams(exams []models.Exam, now time.Time) []models.Exam {
	var out []models.Exam
	for _, e := range exams {
		if examMidnight(e).After(now) {
			out = append(out, e)
		}
	}
	sortExams(out)
	return out
}

// ExamsWithinWindow returns exams falling after now and no later than
// now plus the given number of days.
func ExamsWithinWindow(exams []models.Exam, now time.Time, days int) []models.Exam {
	cutoff := now.AddDate(0, 0, days)
	var out []models.Exam
	for _, e := range exams {
		d := examMidnight(e)
		if d.After(now) && !d.After(cutoff) {
			out = append(out, e)
		}
	}
	sortExams(out)
	return out
}

func sortExams(exams []models.Exam) {
	sort.SliceStable(exams, func(i, j int) bool {
		if exams[i].Date != exams[j].Date {
			return exams[i].Date < exams[j].Date
		}
		return exams[i].Time < exams[j].Time
	})
}

// ExamDay is one date bucket of the grouped exam schedule.
type ExamDay struct {
	Date  string        `json:"date"`
	Exams []models.Exam `json:"exams"`
}

// GroupExamsByDate partitions exams into date buckets. Buckets are
// ordered by ascending date string (safe for ISO dates); exams within
// a bucket are ordered by time of day.
func GroupExamsByDate(exams []models.Exam) []ExamDay {
	grouped := make(map[string][]models.Exam)
	for _, e := range exams {
		grouped[e.Date] = append(grouped[e.Date], e)
	}

	dates := make([]string, 0, len(grouped))
	for d := range grouped {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	days := make([]ExamDay, 0, len(dates))
	for _, d := range dates {
		bucket := grouped[d]
		sort.SliceStable(bucket, func(i, j int) bool { return bucket[i].Time < bucket[j].Time })
		days = append(days, ExamDay{Date: d, Exams: bucket})
	}
	return days
}

// SessionDay is one date bucket of the study schedule.
type SessionDay struct {
	Date     string                `json:"date"`
	Sessions []models.StudySession `json:"sessions"`
}

// GroupSessionsByDate partitions sessions into date buckets ordered by
// ascending date; sessions within a bucket keep insertion order.
func GroupSessionsByDate(sessions []models.StudySession) []SessionDay {
	grouped := make(map[string][]models.StudySession)
	for _, s := range sessions {
		grouped[s.Date] = append(grouped[s.Date], s)
	}

	dates := make([]string, 0, len(grouped))
	for d := range grouped {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	days := make([]SessionDay, 0, len(dates))
	for _, d := range dates {
		days = append(days, SessionDay{Date: d, Sessions: grouped[d]})
	}
	return days
}

// ExamFilter holds the exam-schedule search criteria. An empty
// criterion always matches.
type ExamFilter struct {
	Query  string // case-insensitive substring on course code or title
	Date   string // exact "YYYY-MM-DD" match
	School string // exact match
}

// FilterExams returns the exams matching every supplied criterion.
func FilterExams(exams []models.Exam, f ExamFilter) []models.Exam {
	query := strings.ToLower(f.Query)
	var out []models.Exam
	for _, e := range exams {
		if query != "" &&
			!strings.Contains(strings.ToLower(e.CourseCode), query) &&
			!strings.Contains(strings.ToLower(e.Title), query) {
			continue
		}
		if f.Date != "" && e.Date != f.Date {
			continue
		}
		if f.School != "" && e.School != f.School {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Schools returns the distinct school names present in the exam list,
// sorted.
func Schools(exams []models.Exam) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range exams {
		if !seen[e.School] {
			seen[e.School] = true
			out = append(out, e.School)
		}
	}
	sort.Strings(out)
	return out
}

// ComputeStats derives the dashboard counters from the current exam
// and session collections. Total hours are rounded to one decimal.
func ComputeStats(exams []models.Exam, sessions []models.StudySession, now time.Time) models.DashboardStats {
	stats := models.DashboardStats{
		UpcomingExams:        len(UpcomingExams(exams, now)),
		PlannedStudySessions: len(sessions),
	}

	var totalHours float64
	for _, s := range sessions {
		if s.Completed {
			stats.CompletedStudySessions++
		}
		totalHours += SessionHours(s.StartTime, s.EndTime)
	}
	stats.TotalStudyHours = math.Round(totalHours*10) / 10

	return stats
}
