package handlers

import (
	"net/http"
	"time"

	"nuhub-backend/internal/examsource"
	"nuhub-backend/internal/middleware"
	"nuhub-backend/internal/store"
	"nuhub-backend/internal/study"
)

type DashboardHandler struct {
	collections *store.Collections
	source      examsource.Source
	now         func() time.Time
}

func NewDashboardHandler(collections *store.Collections, source examsource.Source) *DashboardHandler {
	return &DashboardHandler{
		collections: collections,
		source:      source,
		now:         time.Now,
	}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	exams, err := h.source.All(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResp("EXAM_SOURCE_ERROR", "Exam schedule is temporarily unavailable", r))
		return
	}

	sessions, err := h.collections.Sessions(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load study sessions", r))
		return
	}

	writeJSON(w, http.StatusOK, study.ComputeStats(exams, sessions, h.now()))
}

// NextExams returns the three soonest upcoming exams.
func (h *DashboardHandler) NextExams(w http.ResponseWriter, r *http.Request) {
	exams, err := h.source.All(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResp("EXAM_SOURCE_ERROR", "Exam schedule is temporarily unavailable", r))
		return
	}

	upcoming := study.UpcomingExams(exams, h.now())
	if len(upcoming) > 3 {
		upcoming = upcoming[:3]
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"exams": upcoming})
}

// Week returns the next seven days of exams grouped by date.
func (h *DashboardHandler) Week(w http.ResponseWriter, r *http.Request) {
	exams, err := h.source.All(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResp("EXAM_SOURCE_ERROR", "Exam schedule is temporarily unavailable", r))
		return
	}

	window := study.ExamsWithinWindow(exams, h.now(), 7)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total": len(window),
		"days":  study.GroupExamsByDate(window),
	})
}
