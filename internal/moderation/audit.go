package moderation

import (
	"context"
	"log"
	"time"

	"askbox/internal/models"
)

// LogQueryLimit caps audit queries; newest entries win.
const LogQueryLimit = 100

// LogFilter narrows an audit query. Zero-value fields are ignored.
type LogFilter struct {
	Action    string
	ActorRole string
	After     time.Time
	Limit     int
}

// AuditLog appends to and queries the append-only moderation log.
type AuditLog struct {
	logs LogStore
}

func NewAuditLog(logs LogStore) *AuditLog {
	return &AuditLog{logs: logs}
}

// Append records one moderation action. It is fire-and-forget: a failed
// insert is logged locally and swallowed, and idempotency is not
// guaranteed (duplicate entries on retry are acceptable in a log).
func (a *AuditLog) Append(ctx context.Context, action, actorRole string, questionID *uint, details models.LogDetails) {
	entry := models.ModerationLog{
		Action:     action,
		ActorRole:  actorRole,
		QuestionID: questionID,
		Details:    details,
	}
	if err := a.logs.Insert(ctx, &entry); err != nil {
		log.Printf("audit append failed for action %s: %v", action, err)
	}
}

// Recent returns matching entries newest first, capped at LogQueryLimit.
func (a *AuditLog) Recent(ctx context.Context, f LogFilter) ([]models.ModerationLog, error) {
	if f.Limit <= 0 || f.Limit > LogQueryLimit {
		f.Limit = LogQueryLimit
	}
	return a.logs.List(ctx, f)
}
