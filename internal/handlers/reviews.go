package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"nuhub-backend/internal/middleware"
	"nuhub-backend/internal/models"
	"nuhub-backend/internal/store"
)

type ReviewsHandler struct {
	collections *store.Collections
	users       UserLookup
	validate    *validator.Validate
	now         func() time.Time
}

func NewReviewsHandler(collections *store.Collections, users UserLookup, validate *validator.Validate) *ReviewsHandler {
	return &ReviewsHandler{
		collections: collections,
		users:       users,
		validate:    validate,
		now:         time.Now,
	}
}

func (h *ReviewsHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.collections.Reviews(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load reviews", r))
		return
	}

	if course := r.URL.Query().Get("course"); course != "" {
		filtered := make([]models.CourseReview, 0, len(reviews))
		for _, rv := range reviews {
			if rv.CourseCode == course {
				filtered = append(filtered, rv)
			}
		}
		reviews = filtered
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total":   len(reviews),
		"reviews": reviews,
	})
}

func (h *ReviewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", validationFields(err), r))
		return
	}

	userID := middleware.GetUserID(r.Context())

	author := "Anonymous"
	if user, err := h.users.GetByID(r.Context(), userID); err == nil {
		author = user.FullName
	}

	review := models.CourseReview{
		ID:         uuid.NewString(),
		CourseCode: req.CourseCode,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Author:     author,
		Date:       h.now().Format(dateLayout),
	}

	reviews, err := h.collections.Reviews(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load reviews", r))
		return
	}

	reviews = append(reviews, review)
	if err := h.collections.SaveReviews(r.Context(), userID, reviews); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to save review", r))
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

func (h *ReviewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	userID := middleware.GetUserID(r.Context())

	reviews, err := h.collections.Reviews(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load reviews", r))
		return
	}

	for i := range reviews {
		if reviews[i].ID == reviewID {
			reviews = append(reviews[:i], reviews[i+1:]...)
			if err := h.collections.SaveReviews(r.Context(), userID, reviews); err != nil {
				writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to save reviews", r))
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"message": "Review deleted"})
			return
		}
	}

	writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Review not found", r))
}
