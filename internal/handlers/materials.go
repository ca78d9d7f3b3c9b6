package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"nuhub-backend/internal/middleware"
	"nuhub-backend/internal/models"
	"nuhub-backend/internal/store"
)

const maxUploadBytes = 10 << 20 // 10 MB

// UserLookup resolves a user ID to its profile for display fields.
type UserLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type MaterialsHandler struct {
	collections *store.Collections
	users       UserLookup
	storagePath string
	now         func() time.Time
}

func NewMaterialsHandler(collections *store.Collections, users UserLookup, storagePath string) *MaterialsHandler {
	return &MaterialsHandler{
		collections: collections,
		users:       users,
		storagePath: storagePath,
		now:         time.Now,
	}
}

func (h *MaterialsHandler) List(w http.ResponseWriter, r *http.Request) {
	materials, err := h.collections.Materials(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load materials", r))
		return
	}

	typeFilter := r.URL.Query().Get("type")
	query := strings.ToLower(r.URL.Query().Get("q"))

	filtered := make([]models.StudyMaterial, 0, len(materials))
	for _, m := range materials {
		if typeFilter != "" && m.Type != typeFilter {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(m.CourseCode), query) &&
			!strings.Contains(strings.ToLower(m.Title), query) {
			continue
		}
		filtered = append(filtered, m)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total":     len(filtered),
		"materials": filtered,
	})
}

func (h *MaterialsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid multipart form (max 10 MB)", r))
		return
	}

	courseCode := strings.TrimSpace(r.FormValue("course_code"))
	title := strings.TrimSpace(r.FormValue("title"))
	materialType := r.FormValue("type")

	fieldErrors := make(map[string]string)
	if courseCode == "" {
		fieldErrors["course_code"] = "Course code is required"
	}
	if title == "" {
		fieldErrors["title"] = "Title is required"
	}
	if !models.IsMaterialType(materialType) {
		fieldErrors["type"] = "Type must be one of EXAM, NOTE, SOLUTION, OTHER"
	}
	if len(fieldErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", fieldErrors, r))
		return
	}

	material := models.StudyMaterial{
		ID:         uuid.NewString(),
		CourseCode: courseCode,
		Title:      title,
		Type:       materialType,
		UploadedBy: h.uploaderName(r),
		UploadDate: h.now().Format(dateLayout),
	}

	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()
		fileURL, saveErr := h.saveFile(file, header.Filename)
		if saveErr != nil {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", saveErr.Error(), r))
			return
		}
		material.FileURL = fileURL
	} else if err != http.ErrMissingFile {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid file upload", r))
		return
	}

	userID := middleware.GetUserID(r.Context())
	materials, err := h.collections.Materials(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load materials", r))
		return
	}

	materials = append(materials, material)
	if err := h.collections.SaveMaterials(r.Context(), userID, materials); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to save material", r))
		return
	}

	writeJSON(w, http.StatusCreated, material)
}

func (h *MaterialsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	materialID := chi.URLParam(r, "id")
	userID := middleware.GetUserID(r.Context())

	materials, err := h.collections.Materials(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load materials", r))
		return
	}

	for i := range materials {
		if materials[i].ID == materialID {
			materials = append(materials[:i], materials[i+1:]...)
			if err := h.collections.SaveMaterials(r.Context(), userID, materials); err != nil {
				writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to save materials", r))
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"message": "Material deleted"})
			return
		}
	}

	writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Material not found", r))
}

func (h *MaterialsHandler) uploaderName(r *http.Request) string {
	user, err := h.users.GetByID(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		return "Unknown"
	}
	return user.FullName
}

// saveFile sniffs the upload's real content type before writing it to
// disk; the extension alone is not trusted.
func (h *MaterialsHandler) saveFile(file io.Reader, originalName string) (string, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("failed to read file")
	}
	head = head[:n]

	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedUpload(http.DetectContentType(head), ext) {
		return "", fmt.Errorf("Unsupported file type; allowed: PDF, PNG, JPEG, TXT, DOCX, PPTX")
	}

	name := uuid.NewString() + ext
	if err := os.MkdirAll(h.storagePath, 0o755); err != nil {
		return "", fmt.Errorf("failed to prepare storage directory")
	}

	dst, err := os.Create(filepath.Join(h.storagePath, name))
	if err != nil {
		return "", fmt.Errorf("failed to store file")
	}
	defer dst.Close()

	if _, err := dst.Write(head); err != nil {
		return "", fmt.Errorf("failed to store file")
	}
	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to store file")
	}

	return "/uploads/" + name, nil
}

func allowedUpload(detected, ext string) bool {
	switch {
	case strings.HasPrefix(detected, "application/pdf"),
		strings.HasPrefix(detected, "image/png"),
		strings.HasPrefix(detected, "image/jpeg"),
		strings.HasPrefix(detected, "text/plain"):
		return true
	}

	// Office formats are zip containers; DetectContentType reports them
	// as application/zip, so fall back to the extension.
	if strings.HasPrefix(detected, "application/zip") {
		return ext == ".docx" || ext == ".pptx" || ext == ".xlsx"
	}
	return false
}
