package examsource

import (
	"context"
	"log"

	"nuhub-backend/internal/models"
)

// Fallback tries the primary source once and substitutes the fallback
// dataset on failure. The error is logged, not surfaced; endpoints
// that need a visible error state call the primary source directly.
type Fallback struct {
	primary  Source
	fallback Source
}

func NewFallback(primary, fallback Source) *Fallback {
	return &Fallback{primary: primary, fallback: fallback}
}

func (f *Fallback) All(ctx context.Context) ([]models.Exam, error) {
	exams, err := f.primary.All(ctx)
	if err != nil {
		log.Printf("exam provider failed, serving fallback dataset: %v", err)
		return f.fallback.All(ctx)
	}
	return exams, nil
}
