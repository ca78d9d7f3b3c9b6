package study

import (
	"math"
	"time"
	"unicode"
)

// EstimatorConfig holds the tunable inputs of the study-hour
// estimator. Weights map a 4-letter department prefix to a difficulty
// on a 1-5 scale; departments not in the map use DefaultWeight.
type EstimatorConfig struct {
	Weights        map[string]float64
	DefaultWeight  float64
	HoursPerCredit float64
}

// DefaultEstimatorConfig returns the difficulty table used by the
// portal. HoursPerCredit assumes 2 hours of study per unit of credit.
func DefaultEstimatorConfig() EstimatorConfig {
	return EstimatorConfig{
		Weights: map[string]float64{
			"CSCI": 4,
			"MATH": 4,
			"PHYS": 4,
			"CHME": 3.5,
			"ELCE": 3.5,
			"BIOL": 3,
			"ECON": 3,
			"HIST": 2.5,
			"PSYC": 2.5,
			"ARST": 2,
		},
		DefaultWeight:  3,
		HoursPerCredit: 2,
	}
}

type Estimator struct {
	cfg EstimatorConfig
}

func NewEstimator(cfg EstimatorConfig) *Estimator {
	return &Estimator{cfg: cfg}
}

// Difficulty returns the difficulty weight for a course code's
// department prefix (first 4 characters).
func (e *Estimator) Difficulty(courseCode string) float64 {
	if len(courseCode) < 4 {
		return e.cfg.DefaultWeight
	}
	if w, ok := e.cfg.Weights[courseCode[:4]]; ok {
		return w
	}
	return e.cfg.DefaultWeight
}

// courseLevel parses the numeric level following the department
// prefix. An absent or unparseable level defaults to 100.
func courseLevel(courseCode string) int {
	if len(courseCode) < 5 {
		return 100
	}
	level := 0
	seen := false
	for _, r := range courseCode[4:] {
		if !unicode.IsDigit(r) {
			break
		}
		level = level*10 + int(r-'0')
		seen = true
	}
	if !seen {
		return 100
	}
	return level
}

// levelMultiplier scales study time by course level tier. Boundaries
// are inclusive on the upper side: a 200-level course already gets
// the 1.2x tier.
func levelMultiplier(level int) float64 {
	switch {
	case level >= 400:
		return 1.5
	case level >= 300:
		return 1.3
	case level >= 200:
		return 1.2
	default:
		return 1.0
	}
}

// EstimateHours returns the recommended total study-hour budget for a
// course, rounded half-up to the nearest whole hour. It never fails:
// unknown departments and malformed levels fall back to defaults.
func (e *Estimator) EstimateHours(courseCode string) int {
	difficulty := e.Difficulty(courseCode)
	mult := levelMultiplier(courseLevel(courseCode))
	return int(math.Round(difficulty * mult * e.cfg.HoursPerCredit))
}

// SuggestHoursPerDay proposes a daily budget that spreads totalHours
// over the days remaining until the exam, capped at 4 hours a day.
func SuggestHoursPerDay(totalHours int, examDate time.Time, now time.Time) int {
	days := int(examDate.Sub(now).Hours() / 24)
	if days < 1 {
		days = 1
	}
	perDay := int(math.Ceil(float64(totalHours) / float64(days)))
	if perDay > 4 {
		return 4
	}
	if perDay < 1 {
		return 1
	}
	return perDay
}
