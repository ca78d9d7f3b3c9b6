package study

import (
	"testing"
	"time"
)

func TestEstimateHours(t *testing.T) {
	est := NewEstimator(DefaultEstimatorConfig())

	tests := []struct {
		course   string
		expected int
	}{
		{"CSCI151", 8},  // 4 * 1.0 * 2
		{"CSCI199", 8},  // still 100-level tier
		{"CSCI200", 10}, // 4 * 1.2 * 2 = 9.6, rounds up
		{"CSCI300", 10}, // 4 * 1.3 * 2 = 10.4
		{"CSCI400", 12}, // 4 * 1.5 * 2
		{"MATH161", 8},
		{"CHME201", 8},  // 3.5 * 1.2 * 2 = 8.4
		{"HIST100", 5},  // 2.5 * 1.0 * 2
		{"ARST101", 4},
		{"PSYC450", 8}, // 2.5 * 1.5 * 2 = 7.5, rounds half up
	}

	for _, tc := range tests {
		t.Run(tc.course, func(t *testing.T) {
			if got := est.EstimateHours(tc.course); got != tc.expected {
				t.Errorf("EstimateHours(%q) = %d, want %d", tc.course, got, tc.expected)
			}
		})
	}
}

func TestEstimateHours_AlwaysPositive(t *testing.T) {
	est := NewEstimator(DefaultEstimatorConfig())

	courses := []string{"CSCI151", "ZZZZ999", "X", "", "MATH", "ARST001", "CSCIabc"}
	for _, c := range courses {
		if got := est.EstimateHours(c); got <= 0 {
			t.Errorf("EstimateHours(%q) = %d, want > 0", c, got)
		}
	}
}

func TestEstimateHours_UnknownDepartmentUsesDefault(t *testing.T) {
	est := NewEstimator(DefaultEstimatorConfig())

	// ECON is explicitly weighted 3, the same as the default; an
	// unknown department must behave identically at the same level.
	for _, level := range []string{"101", "200", "300", "400"} {
		known := est.EstimateHours("ECON" + level)
		unknown := est.EstimateHours("QQQQ" + level)
		if known != unknown {
			t.Errorf("level %s: unknown dept = %d, explicit weight-3 dept = %d", level, unknown, known)
		}
	}
}

func TestCourseLevel_Defaults(t *testing.T) {
	tests := []struct {
		course   string
		expected int
	}{
		{"CSCI151", 151},
		{"CSCI", 100},
		{"CSCIabc", 100},
		{"", 100},
		{"MATH1510", 1510},
	}

	for _, tc := range tests {
		if got := courseLevel(tc.course); got != tc.expected {
			t.Errorf("courseLevel(%q) = %d, want %d", tc.course, got, tc.expected)
		}
	}
}

func TestSuggestHoursPerDay(t *testing.T) {
	now := time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		total    int
		examDate time.Time
		expected int
	}{
		{"spread over ten days", 10, now.AddDate(0, 0, 10), 1},
		{"capped at four", 40, now.AddDate(0, 0, 2), 4},
		{"exam tomorrow", 3, now.AddDate(0, 0, 1), 3},
		{"exam today clamps to one day", 2, now, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SuggestHoursPerDay(tc.total, tc.examDate, now); got != tc.expected {
				t.Errorf("SuggestHoursPerDay(%d) = %d, want %d", tc.total, got, tc.expected)
			}
		})
	}
}
