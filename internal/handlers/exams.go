package handlers

import (
	"net/http"

	"nuhub-backend/internal/examsource"
	"nuhub-backend/internal/study"
)

// ExamsHandler serves the exam schedule browser. The safe source never
// fails (it substitutes the built-in sample schedule); the strict
// source surfaces provider outages so search results are never built
// from stale or substituted data without the client knowing.
type ExamsHandler struct {
	safe   examsource.Source
	strict examsource.Source
}

func NewExamsHandler(safe, strict examsource.Source) *ExamsHandler {
	return &ExamsHandler{safe: safe, strict: strict}
}

func (h *ExamsHandler) List(w http.ResponseWriter, r *http.Request) {
	exams, err := h.safe.All(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResp("EXAM_SOURCE_ERROR", "Exam schedule is temporarily unavailable", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"exams": exams})
}

func (h *ExamsHandler) Search(w http.ResponseWriter, r *http.Request) {
	exams, err := h.strict.All(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResp("EXAM_SOURCE_ERROR", "Exam schedule is temporarily unavailable", r))
		return
	}

	filter := study.ExamFilter{
		Query:  r.URL.Query().Get("q"),
		Date:   r.URL.Query().Get("date"),
		School: r.URL.Query().Get("school"),
	}

	matched := study.FilterExams(exams, filter)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total": len(matched),
		"days":  study.GroupExamsByDate(matched),
	})
}

func (h *ExamsHandler) Schools(w http.ResponseWriter, r *http.Request) {
	exams, err := h.safe.All(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResp("EXAM_SOURCE_ERROR", "Exam schedule is temporarily unavailable", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"schools": study.Schools(exams)})
}
