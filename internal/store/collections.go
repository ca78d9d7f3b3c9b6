package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"nuhub-backend/internal/models"
)

// Keys holds the configured base keys for the persisted collections.
// Each base key is namespaced per user so the single-writer contract
// holds for every user independently.
type Keys struct {
	Sessions  string
	Materials string
	Reviews   string
}

// Collections wraps a KV backend with typed access to the three
// persisted collections. Readers tolerate an absent key (empty
// collection); writers serialize and replace the whole collection.
type Collections struct {
	kv   KV
	keys Keys
}

func NewCollections(kv KV, keys Keys) *Collections {
	return &Collections{kv: kv, keys: keys}
}

func userKey(base string, userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", base, userID)
}

func load[T any](ctx context.Context, kv KV, key string) ([]T, error) {
	raw, err := kv.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("corrupt collection at %q: %w", key, err)
	}
	return items, nil
}

func save[T any](ctx context.Context, kv KV, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return kv.Save(ctx, key, raw)
}

func (c *Collections) Sessions(ctx context.Context, userID uuid.UUID) ([]models.StudySession, error) {
	return load[models.StudySession](ctx, c.kv, userKey(c.keys.Sessions, userID))
}

func (c *Collections) SaveSessions(ctx context.Context, userID uuid.UUID, sessions []models.StudySession) error {
	return save(ctx, c.kv, userKey(c.keys.Sessions, userID), sessions)
}

func (c *Collections) Materials(ctx context.Context, userID uuid.UUID) ([]models.StudyMaterial, error) {
	return load[models.StudyMaterial](ctx, c.kv, userKey(c.keys.Materials, userID))
}

func (c *Collections) SaveMaterials(ctx context.Context, userID uuid.UUID, materials []models.StudyMaterial) error {
	return save(ctx, c.kv, userKey(c.keys.Materials, userID), materials)
}

func (c *Collections) Reviews(ctx context.Context, userID uuid.UUID) ([]models.CourseReview, error) {
	return load[models.CourseReview](ctx, c.kv, userKey(c.keys.Reviews, userID))
}

func (c *Collections) SaveReviews(ctx context.Context, userID uuid.UUID, reviews []models.CourseReview) error {
	return save(ctx, c.kv, userKey(c.keys.Reviews, userID), reviews)
}
