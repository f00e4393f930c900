package moderation

import (
	"context"
	"testing"
	"time"

	"askbox/internal/models"
)

func TestDayWindow(t *testing.T) {
	// 10:00 UTC is 19:00 at UTC+9, so the day started at 15:00 UTC the
	// previous calendar day.
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	start, end := DayWindow(now)

	wantStart := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantStart.Add(24 * time.Hour)) {
		t.Errorf("end = %v, want %v", end, wantStart.Add(24*time.Hour))
	}

	// 16:00 UTC is already the next UTC+9 day.
	later := time.Date(2026, 9, 1, 16, 0, 0, 0, time.UTC)
	start2, _ := DayWindow(later)
	if !start2.Equal(time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)) {
		t.Errorf("start after 15:00 UTC = %v", start2)
	}
}

func seedSessionLogs(logs *fakeLogStore, sessionID string, n int, at time.Time) {
	for i := 0; i < n; i++ {
		logs.Insert(context.Background(), &models.ModerationLog{
			Action:    models.ActionPublish,
			ActorRole: models.RoleViewer,
			Details:   models.LogDetails{SessionID: sessionID},
			CreatedAt: at,
		})
	}
}

func TestAllowSessionLimit(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	questions := newFakeQuestionStore()
	logs := newFakeLogStore()
	limiter := NewRateLimiter(questions, logs)

	seedSessionLogs(logs, "sess-1", 49, now.Add(-time.Hour))

	allowed, err := limiter.Allow(context.Background(), "sess-1", "", now)
	if err != nil {
		t.Fatal(err)
	}
	if !allowed {
		t.Error("49 prior entries: want allowed")
	}

	seedSessionLogs(logs, "sess-1", 1, now.Add(-time.Hour))
	allowed, err = limiter.Allow(context.Background(), "sess-1", "", now)
	if err != nil {
		t.Fatal(err)
	}
	if allowed {
		t.Error("50 prior entries: want limited")
	}
}

func TestAllowIgnoresYesterday(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	questions := newFakeQuestionStore()
	logs := newFakeLogStore()
	limiter := NewRateLimiter(questions, logs)

	// Just before the UTC+9 day boundary at 15:00 UTC on Aug 31.
	yesterday := time.Date(2026, 8, 31, 14, 59, 59, 0, time.UTC)
	seedSessionLogs(logs, "sess-1", 200, yesterday)

	allowed, err := limiter.Allow(context.Background(), "sess-1", "", now)
	if err != nil {
		t.Fatal(err)
	}
	if !allowed {
		t.Error("yesterday's entries must not count toward today")
	}
}

func TestAllowOriginLimit(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	questions := newFakeQuestionStore()
	questions.now = func() time.Time { return now.Add(-time.Hour) }
	logs := newFakeLogStore()
	limiter := NewRateLimiter(questions, logs)

	for i := 0; i < 99; i++ {
		questions.Insert(context.Background(), &models.Question{Content: "q", OriginHash: "h1"})
	}
	allowed, err := limiter.Allow(context.Background(), "", "h1", now)
	if err != nil {
		t.Fatal(err)
	}
	if !allowed {
		t.Error("99 prior questions: want allowed")
	}

	questions.Insert(context.Background(), &models.Question{Content: "q", OriginHash: "h1"})
	allowed, err = limiter.Allow(context.Background(), "", "h1", now)
	if err != nil {
		t.Fatal(err)
	}
	if allowed {
		t.Error("100 prior questions: want limited")
	}

	// A different origin hash is unaffected.
	allowed, _ = limiter.Allow(context.Background(), "", "h2", now)
	if !allowed {
		t.Error("unrelated origin hash: want allowed")
	}
}

func TestAllowSkipsMissingKeys(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	questions := newFakeQuestionStore()
	logs := newFakeLogStore()
	seedSessionLogs(logs, "sess-1", 500, now.Add(-time.Hour))
	limiter := NewRateLimiter(questions, logs)

	// Anonymous with no resolvable origin: both axes skipped.
	allowed, err := limiter.Allow(context.Background(), "", "", now)
	if err != nil {
		t.Fatal(err)
	}
	if !allowed {
		t.Error("no keys present: want allowed")
	}
}
