package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"nuhub-backend/internal/examsource"
	"nuhub-backend/internal/middleware"
	"nuhub-backend/internal/models"
	"nuhub-backend/internal/store"
	"nuhub-backend/internal/study"
)

const dateLayout = "2006-01-02"

type PlannerHandler struct {
	collections *store.Collections
	source      examsource.Source
	estimator   *study.Estimator
	validate    *validator.Validate
	now         func() time.Time
}

func NewPlannerHandler(collections *store.Collections, source examsource.Source, estimator *study.Estimator, validate *validator.Validate) *PlannerHandler {
	return &PlannerHandler{
		collections: collections,
		source:      source,
		estimator:   estimator,
		validate:    validate,
		now:         time.Now,
	}
}

// Estimate answers "how long should I study for this course" without
// touching any stored state.
func (h *PlannerHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	course := r.URL.Query().Get("course")
	if course == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Query parameter 'course' is required", r))
		return
	}

	hours := h.estimator.EstimateHours(course)
	resp := map[string]interface{}{
		"course_code":     course,
		"difficulty":      h.estimator.Difficulty(course),
		"suggested_hours": hours,
	}

	if examDate := r.URL.Query().Get("exam_date"); examDate != "" {
		d, err := time.Parse(dateLayout, examDate)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "exam_date must be formatted YYYY-MM-DD", r))
			return
		}
		resp["suggested_hours_per_day"] = study.SuggestHoursPerDay(hours, d, h.now())
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *PlannerHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", validationFields(err), r))
		return
	}

	exams, err := h.source.All(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResp("EXAM_SOURCE_ERROR", "Exam schedule is temporarily unavailable", r))
		return
	}

	var exam *models.Exam
	for i := range exams {
		if exams[i].ID == req.ExamID {
			exam = &exams[i]
			break
		}
	}
	if exam == nil {
		writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Exam not found", r))
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed",
			map[string]string{"start_date": "Must be formatted YYYY-MM-DD"}, r))
		return
	}

	examDate, err := time.Parse(dateLayout, exam.Date)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Exam record has an invalid date", r))
		return
	}

	now := h.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if startDate.Before(today) {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed",
			map[string]string{"start_date": "Start date cannot be in the past"}, r))
		return
	}
	if !startDate.Before(examDate) {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed",
			map[string]string{"start_date": "Start date must be before the exam"}, r))
		return
	}

	totalHours := req.TotalHours
	if totalHours == 0 {
		totalHours = float64(h.estimator.EstimateHours(exam.CourseCode))
	}
	sessionsPerDay := req.SessionsPerDay
	if sessionsPerDay == 0 {
		sessionsPerDay = 1
	}
	hoursPerSession := req.HoursPerSession
	if hoursPerSession == 0 {
		hoursPerSession = 2
	}

	generated, err := study.GenerateSessions(*exam, totalHours, startDate, sessionsPerDay, hoursPerSession)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to generate study plan", r))
		return
	}

	userID := middleware.GetUserID(r.Context())
	sessions, err := h.collections.Sessions(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load study sessions", r))
		return
	}

	sessions = append(sessions, generated...)
	if err := h.collections.SaveSessions(r.Context(), userID, sessions); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to save study sessions", r))
		return
	}

	var scheduled float64
	for _, s := range generated {
		scheduled += study.SessionHours(s.StartTime, s.EndTime)
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"sessions":        generated,
		"requested_hours": totalHours,
		"scheduled_hours": scheduled,
	})
}

func (h *PlannerHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.collections.Sessions(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load study sessions", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total": len(sessions),
		"days":  study.GroupSessionsByDate(sessions),
	})
}

func (h *PlannerHandler) ToggleSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	userID := middleware.GetUserID(r.Context())

	sessions, err := h.collections.Sessions(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load study sessions", r))
		return
	}

	for i := range sessions {
		if sessions[i].ID == sessionID {
			sessions[i].Completed = !sessions[i].Completed
			if err := h.collections.SaveSessions(r.Context(), userID, sessions); err != nil {
				writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to save study sessions", r))
				return
			}
			writeJSON(w, http.StatusOK, sessions[i])
			return
		}
	}

	writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Study session not found", r))
}

func (h *PlannerHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	userID := middleware.GetUserID(r.Context())

	sessions, err := h.collections.Sessions(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load study sessions", r))
		return
	}

	for i := range sessions {
		if sessions[i].ID == sessionID {
			sessions = append(sessions[:i], sessions[i+1:]...)
			if err := h.collections.SaveSessions(r.Context(), userID, sessions); err != nil {
				writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to save study sessions", r))
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"message": "Study session deleted"})
			return
		}
	}

	writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Study session not found", r))
}
