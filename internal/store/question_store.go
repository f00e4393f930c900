package store

import (
	"context"
	"errors"
	"time"

	"askbox/internal/models"
	"askbox/internal/moderation"

	"gorm.io/gorm"
)

// QuestionStore is the gorm-backed question repository.
type QuestionStore struct {
	db *gorm.DB
}

func NewQuestionStore(db *gorm.DB) *QuestionStore {
	return &QuestionStore{db: db}
}

func (s *QuestionStore) Insert(ctx context.Context, q *models.Question) error {
	return s.db.WithContext(ctx).Create(q).Error
}

func (s *QuestionStore) GetByID(ctx context.Context, id uint) (models.Question, error) {
	var q models.Question
	if err := s.db.WithContext(ctx).First(&q, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Question{}, moderation.ErrNotFound
		}
		return models.Question{}, err
	}
	return q, nil
}

func (s *QuestionStore) ListPublic(ctx context.Context, limit int) ([]models.Question, error) {
	var items []models.Question
	err := s.db.WithContext(ctx).
		Where("archived = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (s *QuestionStore) SetArchived(ctx context.Context, id uint, archived bool, at *time.Time) error {
	res := s.db.WithContext(ctx).
		Model(&models.Question{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"archived":    archived,
			"archived_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return moderation.ErrNotFound
	}
	return nil
}

func (s *QuestionStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Question{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return moderation.ErrNotFound
	}
	return nil
}

func (s *QuestionStore) CountByOriginBetween(ctx context.Context, originHash string, from, to time.Time) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.Question{}).
		Where("origin_hash = ? AND created_at >= ? AND created_at < ?", originHash, from, to).
		Count(&n).Error
	return n, err
}
