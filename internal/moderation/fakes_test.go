package moderation

import (
	"context"
	"errors"
	"sync"
	"time"

	"askbox/internal/models"
)

// In-memory stand-ins for the gorm stores.

type fakeQuestionStore struct {
	mu        sync.Mutex
	nextID    uint
	rows      map[uint]models.Question
	insertErr error
	now       func() time.Time
}

func newFakeQuestionStore() *fakeQuestionStore {
	return &fakeQuestionStore{rows: map[uint]models.Question{}, now: time.Now}
}

func (f *fakeQuestionStore) Insert(_ context.Context, q *models.Question) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.nextID++
	q.ID = f.nextID
	if q.CreatedAt.IsZero() {
		q.CreatedAt = f.now()
	}
	f.rows[q.ID] = *q
	return nil
}

func (f *fakeQuestionStore) GetByID(_ context.Context, id uint) (models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.rows[id]
	if !ok {
		return models.Question{}, ErrNotFound
	}
	return q, nil
}

func (f *fakeQuestionStore) ListPublic(_ context.Context, limit int) ([]models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Question
	for _, q := range f.rows {
		if !q.Archived {
			out = append(out, q)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeQuestionStore) SetArchived(_ context.Context, id uint, archived bool, at *time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	q, ok := f.rows[id]
	if !ok {
		return ErrNotFound
	}
	q.Archived = archived
	q.ArchivedAt = at
	f.rows[id] = q
	return nil
}

func (f *fakeQuestionStore) Delete(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeQuestionStore) CountByOriginBetween(_ context.Context, originHash string, from, to time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, q := range f.rows {
		if q.OriginHash == originHash && !q.CreatedAt.Before(from) && q.CreatedAt.Before(to) {
			n++
		}
	}
	return n, nil
}

type fakeReviewStore struct {
	mu        sync.Mutex
	nextID    uint
	rows      map[uint]models.PendingReview
	insertErr error
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{rows: map[uint]models.PendingReview{}}
}

func (f *fakeReviewStore) Insert(_ context.Context, r *models.PendingReview) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.nextID++
	r.ID = f.nextID
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	f.rows[r.ID] = *r
	return nil
}

func (f *fakeReviewStore) GetByID(_ context.Context, id uint) (models.PendingReview, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rows[id]
	if !ok {
		return models.PendingReview{}, ErrNotFound
	}
	return r, nil
}

func (f *fakeReviewStore) MarkReviewed(_ context.Context, id uint, status string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rows[id]
	if !ok || r.Status != models.ReviewStatusPending {
		return ErrAlreadyReviewed
	}
	r.Status = status
	r.ReviewedAt = &at
	f.rows[id] = r
	return nil
}

func (f *fakeReviewStore) ListRecent(_ context.Context, limit int) ([]models.PendingReview, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.PendingReview
	for _, r := range f.rows {
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeLogStore struct {
	mu        sync.Mutex
	nextID    uint
	rows      []models.ModerationLog
	insertErr error
}

func newFakeLogStore() *fakeLogStore {
	return &fakeLogStore{}
}

func (f *fakeLogStore) Insert(_ context.Context, e *models.ModerationLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.nextID++
	e.ID = f.nextID
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	f.rows = append(f.rows, *e)
	return nil
}

func (f *fakeLogStore) CountBySessionBetween(_ context.Context, sessionID string, from, to time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, e := range f.rows {
		if e.Details.SessionID == sessionID && !e.CreatedAt.Before(from) && e.CreatedAt.Before(to) {
			n++
		}
	}
	return n, nil
}

func (f *fakeLogStore) List(_ context.Context, filter LogFilter) ([]models.ModerationLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.ModerationLog
	for i := len(f.rows) - 1; i >= 0; i-- {
		e := f.rows[i]
		if filter.Action != "" && e.Action != filter.Action {
			continue
		}
		if filter.ActorRole != "" && e.ActorRole != filter.ActorRole {
			continue
		}
		if !filter.After.IsZero() && e.CreatedAt.Before(filter.After) {
			continue
		}
		out = append(out, e)
		if len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeLogStore) byAction(action string) []models.ModerationLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.ModerationLog
	for _, e := range f.rows {
		if e.Action == action {
			out = append(out, e)
		}
	}
	return out
}

type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (f *fakeNotifier) Notify(message string, _ map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, message)
}

func (f *fakeNotifier) got(message string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.messages {
		if m == message {
			return true
		}
	}
	return false
}

var errBoom = errors.New("boom")
