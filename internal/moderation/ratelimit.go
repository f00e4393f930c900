package moderation

import (
	"context"
	"time"
)

// Daily thresholds per rolling UTC+9 calendar day.
const (
	SessionDailyLimit = 50  // audit-log entries tagged with the session id
	OriginDailyLimit  = 100 // questions sharing the origin hash
)

// The board counts a "day" as a calendar day at fixed UTC+9.
var dayZone = time.FixedZone("UTC+9", 9*60*60)

// DayWindow converts now into today's [start, end) UTC window for the
// fixed UTC+9 day.
func DayWindow(now time.Time) (start, end time.Time) {
	local := now.In(dayZone)
	start = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, dayZone).UTC()
	return start, start.Add(24 * time.Hour)
}

// RateLimiter checks recent activity counts against the daily
// thresholds. Both checks are advisory reads against the store with no
// locking, so concurrent in-flight submissions can overshoot.
type RateLimiter struct {
	questions QuestionStore
	logs      LogStore
}

func NewRateLimiter(questions QuestionStore, logs LogStore) *RateLimiter {
	return &RateLimiter{questions: questions, logs: logs}
}

// Allow reports whether a submission keyed by sessionID and originHash
// may proceed. An absent key skips that axis entirely.
func (l *RateLimiter) Allow(ctx context.Context, sessionID, originHash string, now time.Time) (bool, error) {
	start, end := DayWindow(now)

	if sessionID != "" {
		n, err := l.logs.CountBySessionBetween(ctx, sessionID, start, end)
		if err != nil {
			return false, err
		}
		if n >= SessionDailyLimit {
			return false, nil
		}
	}

	if originHash != "" {
		n, err := l.questions.CountByOriginBetween(ctx, originHash, start, end)
		if err != nil {
			return false, err
		}
		if n >= OriginDailyLimit {
			return false, nil
		}
	}

	return true, nil
}
