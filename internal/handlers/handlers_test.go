package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"nuhub-backend/internal/examsource"
	"nuhub-backend/internal/middleware"
	"nuhub-backend/internal/models"
	"nuhub-backend/internal/store"
	"nuhub-backend/internal/study"
)

var testUserID = uuid.MustParse("11111111-2222-3333-4444-555555555555")

type failingSource struct{}

func (failingSource) All(_ context.Context) ([]models.Exam, error) {
	return nil, errors.New("provider down")
}

type stubUsers struct{ name string }

func (s stubUsers) GetByID(_ context.Context, _ uuid.UUID) (*models.User, error) {
	return &models.User{ID: testUserID, FullName: s.name}, nil
}

func testCollections() *store.Collections {
	return store.NewCollections(store.NewMemoryKV(), store.Keys{
		Sessions:  "nu:study_sessions",
		Materials: "nu:materials",
		Reviews:   "nu:course_reviews",
	})
}

func testExams() []models.Exam {
	return []models.Exam{
		{ID: 1, CourseCode: "CSCI151", Title: "Programming for Scientists and Engineers", School: "SEDS", Date: "2025-12-09", Time: "09:00", Room: "7.201"},
		{ID: 2, CourseCode: "MATH161", Title: "Calculus I", School: "SSH", Date: "2025-12-10", Time: "12:00", Room: "3.110"},
		{ID: 3, CourseCode: "MATH162", Title: "Calculus II", School: "SSH", Date: "2025-12-10", Time: "09:00", Room: "3.111"},
	}
}

func fixedNow() time.Time {
	return time.Date(2025, 12, 1, 10, 0, 0, 0, time.UTC)
}

func authed(req *http.Request) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, testUserID))
}

func newPlannerHandler(collections *store.Collections, src examsource.Source) *PlannerHandler {
	h := NewPlannerHandler(collections, src, study.NewEstimator(study.DefaultEstimatorConfig()), NewValidator())
	h.now = fixedNow
	return h
}

func plannerRouter(h *PlannerHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/estimate", h.Estimate)
	r.Post("/plans", h.CreatePlan)
	r.Get("/sessions", h.ListSessions)
	r.Put("/sessions/{id}/toggle", h.ToggleSession)
	r.Delete("/sessions/{id}", h.DeleteSession)
	return r
}

// ─── Planner ───

func TestCreatePlan_GeneratesAndPersists(t *testing.T) {
	collections := testCollections()
	h := newPlannerHandler(collections, examsource.NewFixed(testExams()))
	r := plannerRouter(h)

	body, _ := json.Marshal(map[string]interface{}{
		"exam_id":           2,
		"start_date":        "2025-12-07",
		"total_hours":       5,
		"sessions_per_day":  2,
		"hours_per_session": 2,
	})

	req := authed(httptest.NewRequest(http.MethodPost, "/plans", bytes.NewReader(body)))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Sessions       []models.StudySession `json:"sessions"`
		RequestedHours float64               `json:"requested_hours"`
		ScheduledHours float64               `json:"scheduled_hours"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	// 5 hours at 2 sessions/day of 2h each: [2,2] on day one, [1] on day two
	if len(resp.Sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(resp.Sessions))
	}
	if resp.RequestedHours != 5 || resp.ScheduledHours != 5 {
		t.Errorf("expected requested=5 scheduled=5, got %v / %v", resp.RequestedHours, resp.ScheduledHours)
	}
	if resp.Sessions[0].StartTime != "13:00" || resp.Sessions[1].StartTime != "13:30" {
		t.Errorf("expected staggered starts 13:00/13:30, got %s/%s", resp.Sessions[0].StartTime, resp.Sessions[1].StartTime)
	}
	for _, s := range resp.Sessions {
		if s.Date >= "2025-12-10" {
			t.Errorf("session scheduled on or after exam day: %s", s.Date)
		}
		if s.CourseCode != "MATH161" {
			t.Errorf("expected course MATH161, got %s", s.CourseCode)
		}
	}

	stored, err := collections.Sessions(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("failed to load stored sessions: %v", err)
	}
	if len(stored) != 3 {
		t.Errorf("expected 3 persisted sessions, got %d", len(stored))
	}
}

func TestCreatePlan_ExamNotFound(t *testing.T) {
	h := newPlannerHandler(testCollections(), examsource.NewFixed(testExams()))
	r := plannerRouter(h)

	body, _ := json.Marshal(map[string]interface{}{
		"exam_id":    999,
		"start_date": "2025-12-07",
	})

	req := authed(httptest.NewRequest(http.MethodPost, "/plans", bytes.NewReader(body)))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestCreatePlan_StartDateValidation(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
	}{
		{"in the past", "2025-11-30"},
		{"on exam day", "2025-12-10"},
		{"after exam day", "2025-12-12"},
		{"malformed", "12/07/2025"},
	}

	h := newPlannerHandler(testCollections(), examsource.NewFixed(testExams()))
	r := plannerRouter(h)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body, _ := json.Marshal(map[string]interface{}{
				"exam_id":    2,
				"start_date": tc.startDate,
			})

			req := authed(httptest.NewRequest(http.MethodPost, "/plans", bytes.NewReader(body)))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
			}
		})
	}
}

func TestCreatePlan_ProviderDown(t *testing.T) {
	h := newPlannerHandler(testCollections(), failingSource{})
	r := plannerRouter(h)

	body, _ := json.Marshal(map[string]interface{}{
		"exam_id":    2,
		"start_date": "2025-12-07",
	})

	req := authed(httptest.NewRequest(http.MethodPost, "/plans", bytes.NewReader(body)))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
}

func TestToggleSession_TwiceRestoresOriginal(t *testing.T) {
	collections := testCollections()
	session := models.StudySession{
		ID: "s-1", ExamID: 2, CourseCode: "MATH161", Title: "Calculus I",
		Date: "2025-12-07", StartTime: "13:00", EndTime: "15:00",
	}
	if err := collections.SaveSessions(context.Background(), testUserID, []models.StudySession{session}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	h := newPlannerHandler(collections, examsource.NewFixed(testExams()))
	r := plannerRouter(h)

	toggle := func() models.StudySession {
		req := authed(httptest.NewRequest(http.MethodPut, "/sessions/s-1/toggle", nil))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		var s models.StudySession
		if err := json.NewDecoder(rr.Body).Decode(&s); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		return s
	}

	if s := toggle(); !s.Completed {
		t.Error("first toggle should mark session completed")
	}
	if s := toggle(); s.Completed {
		t.Error("second toggle should restore the original state")
	}
}

func TestToggleSession_NotFound(t *testing.T) {
	h := newPlannerHandler(testCollections(), examsource.NewFixed(testExams()))
	r := plannerRouter(h)

	req := authed(httptest.NewRequest(http.MethodPut, "/sessions/nope/toggle", nil))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestDeleteSession(t *testing.T) {
	collections := testCollections()
	sessions := []models.StudySession{
		{ID: "s-1", Date: "2025-12-07", StartTime: "13:00", EndTime: "15:00"},
		{ID: "s-2", Date: "2025-12-08", StartTime: "13:00", EndTime: "15:00"},
	}
	collections.SaveSessions(context.Background(), testUserID, sessions)

	h := newPlannerHandler(collections, examsource.NewFixed(testExams()))
	r := plannerRouter(h)

	req := authed(httptest.NewRequest(http.MethodDelete, "/sessions/s-1", nil))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	remaining, _ := collections.Sessions(context.Background(), testUserID)
	if len(remaining) != 1 || remaining[0].ID != "s-2" {
		t.Errorf("expected only s-2 to remain, got %+v", remaining)
	}
}

func TestListSessions_GroupedByDate(t *testing.T) {
	collections := testCollections()
	collections.SaveSessions(context.Background(), testUserID, []models.StudySession{
		{ID: "s-1", Date: "2025-12-08", StartTime: "13:00", EndTime: "15:00"},
		{ID: "s-2", Date: "2025-12-07", StartTime: "13:00", EndTime: "14:00"},
		{ID: "s-3", Date: "2025-12-07", StartTime: "13:30", EndTime: "14:30"},
	})

	h := newPlannerHandler(collections, examsource.NewFixed(testExams()))
	r := plannerRouter(h)

	req := authed(httptest.NewRequest(http.MethodGet, "/sessions", nil))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var resp struct {
		Total int                `json:"total"`
		Days  []study.SessionDay `json:"days"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if resp.Total != 3 {
		t.Errorf("expected total 3, got %d", resp.Total)
	}
	if len(resp.Days) != 2 || resp.Days[0].Date != "2025-12-07" || len(resp.Days[0].Sessions) != 2 {
		t.Errorf("unexpected grouping: %+v", resp.Days)
	}
}

func TestEstimate(t *testing.T) {
	h := newPlannerHandler(testCollections(), examsource.NewFixed(testExams()))
	r := plannerRouter(h)

	req := authed(httptest.NewRequest(http.MethodGet, "/estimate?course=CSCI202&exam_date=2025-12-10", nil))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp map[string]interface{}
	json.NewDecoder(rr.Body).Decode(&resp)

	// CSCI (4) * 200-level (1.2) * 2 = 9.6 -> 10
	if resp["suggested_hours"].(float64) != 10 {
		t.Errorf("expected suggested_hours 10, got %v", resp["suggested_hours"])
	}
	// 10 hours over 8 remaining days, capped at 4 -> 2
	if resp["suggested_hours_per_day"].(float64) != 2 {
		t.Errorf("expected suggested_hours_per_day 2, got %v", resp["suggested_hours_per_day"])
	}
}

func TestEstimate_MissingCourse(t *testing.T) {
	h := newPlannerHandler(testCollections(), examsource.NewFixed(testExams()))
	r := plannerRouter(h)

	req := authed(httptest.NewRequest(http.MethodGet, "/estimate", nil))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

// ─── Exams ───

func TestExamsSearch_FiltersAndGroups(t *testing.T) {
	h := NewExamsHandler(examsource.NewFixed(testExams()), examsource.NewFixed(testExams()))

	req := httptest.NewRequest(http.MethodGet, "/search?q=calculus", nil)
	rr := httptest.NewRecorder()
	h.Search(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp struct {
		Total int             `json:"total"`
		Days  []study.ExamDay `json:"days"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if resp.Total != 2 {
		t.Errorf("expected 2 matches, got %d", resp.Total)
	}
	if len(resp.Days) != 1 || resp.Days[0].Date != "2025-12-10" {
		t.Fatalf("unexpected day grouping: %+v", resp.Days)
	}
	// Within a day, exams sort by time of day
	if resp.Days[0].Exams[0].CourseCode != "MATH162" {
		t.Errorf("expected MATH162 (09:00) first, got %s", resp.Days[0].Exams[0].CourseCode)
	}
}

func TestExamsSearch_ProviderDown(t *testing.T) {
	h := NewExamsHandler(examsource.NewFixed(testExams()), failingSource{})

	req := httptest.NewRequest(http.MethodGet, "/search?q=calculus", nil)
	rr := httptest.NewRecorder()
	h.Search(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}

	var resp models.ErrorResponse
	json.NewDecoder(rr.Body).Decode(&resp)
	if resp.Error.Code != "EXAM_SOURCE_ERROR" {
		t.Errorf("expected EXAM_SOURCE_ERROR, got %s", resp.Error.Code)
	}
}

func TestExamsSchools(t *testing.T) {
	h := NewExamsHandler(examsource.NewFixed(testExams()), examsource.NewFixed(testExams()))

	req := httptest.NewRequest(http.MethodGet, "/schools", nil)
	rr := httptest.NewRecorder()
	h.Schools(rr, req)

	var resp struct {
		Schools []string `json:"schools"`
	}
	json.NewDecoder(rr.Body).Decode(&resp)

	if len(resp.Schools) != 2 || resp.Schools[0] != "SEDS" || resp.Schools[1] != "SSH" {
		t.Errorf("expected sorted distinct schools [SEDS SSH], got %v", resp.Schools)
	}
}

// ─── Materials ───

func materialsRouter(h *MaterialsHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Upload)
	r.Delete("/{id}", h.Delete)
	return r
}

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("failed to write field %s: %v", k, err)
		}
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestMaterialsUpload_WithoutFile(t *testing.T) {
	collections := testCollections()
	h := NewMaterialsHandler(collections, stubUsers{name: "Aizhan T."}, t.TempDir())
	h.now = fixedNow
	r := materialsRouter(h)

	body, contentType := multipartBody(t, map[string]string{
		"course_code": "MATH161",
		"title":       "Midterm 2 solutions",
		"type":        "SOLUTION",
	})

	req := authed(httptest.NewRequest(http.MethodPost, "/", body))
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var m models.StudyMaterial
	json.NewDecoder(rr.Body).Decode(&m)
	if m.UploadedBy != "Aizhan T." {
		t.Errorf("expected uploader name from profile, got %q", m.UploadedBy)
	}
	if m.UploadDate != "2025-12-01" {
		t.Errorf("expected upload date 2025-12-01, got %s", m.UploadDate)
	}

	stored, _ := collections.Materials(context.Background(), testUserID)
	if len(stored) != 1 {
		t.Errorf("expected 1 persisted material, got %d", len(stored))
	}
}

func TestMaterialsUpload_Validation(t *testing.T) {
	h := NewMaterialsHandler(testCollections(), stubUsers{name: "X"}, t.TempDir())
	r := materialsRouter(h)

	body, contentType := multipartBody(t, map[string]string{
		"course_code": "",
		"title":       "",
		"type":        "LECTURE",
	})

	req := authed(httptest.NewRequest(http.MethodPost, "/", body))
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var resp models.ErrorResponse
	json.NewDecoder(rr.Body).Decode(&resp)
	for _, field := range []string{"course_code", "title", "type"} {
		if resp.Error.Fields[field] == "" {
			t.Errorf("expected a field error for %s", field)
		}
	}
}

func TestMaterialsList_Filter(t *testing.T) {
	collections := testCollections()
	collections.SaveMaterials(context.Background(), testUserID, []models.StudyMaterial{
		{ID: "m-1", CourseCode: "MATH161", Title: "Past exam 2024", Type: "EXAM"},
		{ID: "m-2", CourseCode: "MATH161", Title: "Lecture notes", Type: "NOTE"},
		{ID: "m-3", CourseCode: "CSCI151", Title: "Past exam 2023", Type: "EXAM"},
	})

	h := NewMaterialsHandler(collections, stubUsers{name: "X"}, t.TempDir())
	r := materialsRouter(h)

	req := authed(httptest.NewRequest(http.MethodGet, "/?type=EXAM&q=math", nil))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var resp struct {
		Total     int                    `json:"total"`
		Materials []models.StudyMaterial `json:"materials"`
	}
	json.NewDecoder(rr.Body).Decode(&resp)

	if resp.Total != 1 || resp.Materials[0].ID != "m-1" {
		t.Errorf("expected only m-1, got %+v", resp.Materials)
	}
}

func TestMaterialsDelete_NotFound(t *testing.T) {
	h := NewMaterialsHandler(testCollections(), stubUsers{name: "X"}, t.TempDir())
	r := materialsRouter(h)

	req := authed(httptest.NewRequest(http.MethodDelete, "/nope", nil))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

// ─── Reviews ───

func reviewsRouter(h *ReviewsHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Delete("/{id}", h.Delete)
	return r
}

func TestReviewsCreateAndList(t *testing.T) {
	collections := testCollections()
	h := NewReviewsHandler(collections, stubUsers{name: "Dias K."}, NewValidator())
	h.now = fixedNow
	r := reviewsRouter(h)

	body, _ := json.Marshal(map[string]interface{}{
		"course_code": "MATH161",
		"rating":      4,
		"comment":     "Fair grading, heavy problem sets.",
	})

	req := authed(httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body)))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var review models.CourseReview
	json.NewDecoder(rr.Body).Decode(&review)
	if review.Author != "Dias K." || review.Date != "2025-12-01" {
		t.Errorf("unexpected review metadata: %+v", review)
	}

	listReq := authed(httptest.NewRequest(http.MethodGet, "/?course=MATH161", nil))
	listRR := httptest.NewRecorder()
	r.ServeHTTP(listRR, listReq)

	var resp struct {
		Total   int                   `json:"total"`
		Reviews []models.CourseReview `json:"reviews"`
	}
	json.NewDecoder(listRR.Body).Decode(&resp)
	if resp.Total != 1 || resp.Reviews[0].Rating != 4 {
		t.Errorf("unexpected review list: %+v", resp)
	}
}

func TestReviewsCreate_InvalidRating(t *testing.T) {
	h := NewReviewsHandler(testCollections(), stubUsers{name: "X"}, NewValidator())
	r := reviewsRouter(h)

	for _, rating := range []int{0, 6, -1} {
		body, _ := json.Marshal(map[string]interface{}{
			"course_code": "MATH161",
			"rating":      rating,
		})

		req := authed(httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body)))
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("rating %d: expected 400, got %d", rating, rr.Code)
		}
	}
}

// ─── Dashboard ───

func TestDashboardStats(t *testing.T) {
	collections := testCollections()
	collections.SaveSessions(context.Background(), testUserID, []models.StudySession{
		{ID: "s-1", Date: "2025-12-07", StartTime: "13:00", EndTime: "15:00", Completed: true},
		{ID: "s-2", Date: "2025-12-08", StartTime: "13:00", EndTime: "13:30"},
	})

	h := NewDashboardHandler(collections, examsource.NewFixed(testExams()))
	h.now = fixedNow

	req := authed(httptest.NewRequest(http.MethodGet, "/stats", nil))
	rr := httptest.NewRecorder()
	h.Stats(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var stats models.DashboardStats
	json.NewDecoder(rr.Body).Decode(&stats)

	if stats.UpcomingExams != 3 {
		t.Errorf("expected 3 upcoming exams, got %d", stats.UpcomingExams)
	}
	if stats.PlannedStudySessions != 2 || stats.CompletedStudySessions != 1 {
		t.Errorf("unexpected session counts: %+v", stats)
	}
	if stats.TotalStudyHours != 2.5 {
		t.Errorf("expected 2.5 total hours, got %v", stats.TotalStudyHours)
	}
}

func TestDashboardNextExams_CapsAtThree(t *testing.T) {
	exams := append(testExams(),
		models.Exam{ID: 4, CourseCode: "PHYS161", Title: "Physics I", School: "SSH", Date: "2025-12-11", Time: "15:00"},
		models.Exam{ID: 5, CourseCode: "ECON101", Title: "Microeconomics", School: "GSB", Date: "2025-12-15", Time: "12:00"},
	)

	h := NewDashboardHandler(testCollections(), examsource.NewFixed(exams))
	h.now = fixedNow

	req := authed(httptest.NewRequest(http.MethodGet, "/next", nil))
	rr := httptest.NewRecorder()
	h.NextExams(rr, req)

	var resp struct {
		Exams []models.Exam `json:"exams"`
	}
	json.NewDecoder(rr.Body).Decode(&resp)

	if len(resp.Exams) != 3 {
		t.Fatalf("expected 3 exams, got %d", len(resp.Exams))
	}
	if resp.Exams[0].ID != 1 {
		t.Errorf("expected soonest exam first, got ID %d", resp.Exams[0].ID)
	}
}

func TestDashboardWeek_Window(t *testing.T) {
	h := NewDashboardHandler(testCollections(), examsource.NewFixed([]models.Exam{
		{ID: 1, CourseCode: "CSCI151", Date: "2025-12-05", Time: "09:00"},
		{ID: 2, CourseCode: "MATH161", Date: "2025-12-08", Time: "12:00"},
		{ID: 3, CourseCode: "ECON101", Date: "2025-12-20", Time: "12:00"},
	}))
	h.now = fixedNow

	req := authed(httptest.NewRequest(http.MethodGet, "/week", nil))
	rr := httptest.NewRecorder()
	h.Week(rr, req)

	var resp struct {
		Total int             `json:"total"`
		Days  []study.ExamDay `json:"days"`
	}
	json.NewDecoder(rr.Body).Decode(&resp)

	if resp.Total != 2 {
		t.Errorf("expected 2 exams inside the 7-day window, got %d", resp.Total)
	}
}
