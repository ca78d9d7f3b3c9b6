package examsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"nuhub-backend/internal/models"
)

// Source supplies the exam list. The provider owns the records; this
// package only consumes them.
type Source interface {
	All(ctx context.Context) ([]models.Exam, error)
}

// Remote fetches exams from the university exam API.
type Remote struct {
	baseURL string
	client  *http.Client
}

func NewRemote(baseURL string, timeout time.Duration) *Remote {
	return &Remote{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (r *Remote) All(ctx context.Context) ([]models.Exam, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/api/exams/all", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build exam request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exam provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("exam provider returned status %d", resp.StatusCode)
	}

	var exams []models.Exam
	if err := json.NewDecoder(resp.Body).Decode(&exams); err != nil {
		return nil, fmt.Errorf("failed to decode exam list: %w", err)
	}
	return exams, nil
}
