package store

import (
	"context"
	"errors"
	"time"

	"askbox/internal/models"
	"askbox/internal/moderation"

	"gorm.io/gorm"
)

// ReviewStore is the gorm-backed pending-review repository. Reviews are
// never deleted; they stay behind as history even after the question
// they reference is gone.
type ReviewStore struct {
	db *gorm.DB
}

func NewReviewStore(db *gorm.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

func (s *ReviewStore) Insert(ctx context.Context, r *models.PendingReview) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *ReviewStore) GetByID(ctx context.Context, id uint) (models.PendingReview, error) {
	var r models.PendingReview
	if err := s.db.WithContext(ctx).First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.PendingReview{}, moderation.ErrNotFound
		}
		return models.PendingReview{}, err
	}
	return r, nil
}

// MarkReviewed only matches rows still pending, so a concurrent second
// reviewer gets ErrAlreadyReviewed instead of a double transition.
func (s *ReviewStore) MarkReviewed(ctx context.Context, id uint, status string, at time.Time) error {
	res := s.db.WithContext(ctx).
		Model(&models.PendingReview{}).
		Where("id = ? AND status = ?", id, models.ReviewStatusPending).
		Updates(map[string]interface{}{
			"status":      status,
			"reviewed_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return moderation.ErrAlreadyReviewed
	}
	return nil
}

func (s *ReviewStore) ListRecent(ctx context.Context, limit int) ([]models.PendingReview, error) {
	var items []models.PendingReview
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}
