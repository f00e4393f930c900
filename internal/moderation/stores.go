package moderation

import (
	"context"
	"time"

	"askbox/internal/models"
)

// Store interfaces consumed by the moderation pipeline. The gorm-backed
// implementations live in internal/store; tests use in-memory fakes.

type QuestionStore interface {
	Insert(ctx context.Context, q *models.Question) error
	GetByID(ctx context.Context, id uint) (models.Question, error)
	ListPublic(ctx context.Context, limit int) ([]models.Question, error)
	// SetArchived updates the archived flag and archived_at together;
	// a nil timestamp clears archived_at.
	SetArchived(ctx context.Context, id uint, archived bool, at *time.Time) error
	Delete(ctx context.Context, id uint) error
	CountByOriginBetween(ctx context.Context, originHash string, from, to time.Time) (int64, error)
}

type ReviewStore interface {
	Insert(ctx context.Context, r *models.PendingReview) error
	GetByID(ctx context.Context, id uint) (models.PendingReview, error)
	// MarkReviewed transitions a review out of pending. It must only
	// touch rows whose current status is pending and return
	// ErrAlreadyReviewed otherwise, so concurrent double-processing
	// loses at the store rather than double-archiving.
	MarkReviewed(ctx context.Context, id uint, status string, at time.Time) error
	ListRecent(ctx context.Context, limit int) ([]models.PendingReview, error)
}

type LogStore interface {
	Insert(ctx context.Context, e *models.ModerationLog) error
	CountBySessionBetween(ctx context.Context, sessionID string, from, to time.Time) (int64, error)
	List(ctx context.Context, f LogFilter) ([]models.ModerationLog, error)
}

// Notifier is the best-effort side channel for moderation events. It
// never returns an error and must never block the caller.
type Notifier interface {
	Notify(message string, context map[string]interface{})
}

// NopNotifier satisfies Notifier for wiring without a webhook.
type NopNotifier struct{}

func (NopNotifier) Notify(string, map[string]interface{}) {}
