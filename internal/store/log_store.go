package store

import (
	"context"
	"time"

	"askbox/internal/models"
	"askbox/internal/moderation"

	"gorm.io/gorm"
)

// LogStore is the gorm-backed moderation log repository. Entries are
// inserted only; there is no update or delete path on this table.
type LogStore struct {
	db *gorm.DB
}

func NewLogStore(db *gorm.DB) *LogStore {
	return &LogStore{db: db}
}

func (s *LogStore) Insert(ctx context.Context, e *models.ModerationLog) error {
	return s.db.WithContext(ctx).Create(e).Error
}

// CountBySessionBetween matches the session id inside the jsonb details
// payload; the raw session id is only ever stored there.
func (s *LogStore) CountBySessionBetween(ctx context.Context, sessionID string, from, to time.Time) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.ModerationLog{}).
		Where("details->>'session_id' = ? AND created_at >= ? AND created_at < ?", sessionID, from, to).
		Count(&n).Error
	return n, err
}

func (s *LogStore) List(ctx context.Context, f moderation.LogFilter) ([]models.ModerationLog, error) {
	q := s.db.WithContext(ctx).Model(&models.ModerationLog{})
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.ActorRole != "" {
		q = q.Where("actor_role = ?", f.ActorRole)
	}
	if !f.After.IsZero() {
		q = q.Where("created_at >= ?", f.After)
	}

	var items []models.ModerationLog
	err := q.Order("created_at DESC").Limit(f.Limit).Find(&items).Error
	return items, err
}
